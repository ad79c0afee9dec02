// Command ivc manages clients, invoices and quotes from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/invoicing/cmd"
)

func main() {
	// Shell completion runs first: when invoked by the shell's completion
	// hook it prints candidates and exits.
	completion().Complete("ivc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the command tree for the shell completion engine.
// Install it with: COMP_INSTALL=1 ivc
func completion() *complete.Command {
	statuses := predict.Set{"draft", "sent", "paid", "overdue", "accepted", "rejected"}
	periods := predict.Set{"day", "week", "month", "quarter", "year"}

	sub := map[string]*complete.Command{
		"add-client":  {Flags: map[string]complete.Predictor{"name": predict.Something, "email": predict.Something, "phone": predict.Something, "address": predict.Something}},
		"edit-client": {Flags: map[string]complete.Predictor{"name": predict.Something, "email": predict.Something, "phone": predict.Something, "address": predict.Something}},
		"rm-client":   {},
		"clients":     {},

		"add-invoice":  {Flags: map[string]complete.Predictor{"client": predict.Something, "issue": predict.Something, "due": predict.Something, "tax": predict.Something, "notes": predict.Something, "status": statuses, "item": predict.Something}},
		"edit-invoice": {Flags: map[string]complete.Predictor{"client": predict.Something, "issue": predict.Something, "due": predict.Something, "tax": predict.Something, "notes": predict.Something, "item": predict.Something}},
		"rm-invoice":   {},
		"invoices":     {Flags: map[string]complete.Predictor{"status": statuses, "client": predict.Something, "in": predict.Something, "period": periods}},

		"add-quote":  {Flags: map[string]complete.Predictor{"client": predict.Something, "issue": predict.Something, "valid": predict.Something, "tax": predict.Something, "notes": predict.Something, "status": statuses, "item": predict.Something}},
		"edit-quote": {Flags: map[string]complete.Predictor{"client": predict.Something, "issue": predict.Something, "valid": predict.Something, "tax": predict.Something, "notes": predict.Something, "item": predict.Something}},
		"rm-quote":   {},
		"quotes":     {Flags: map[string]complete.Predictor{"status": statuses, "client": predict.Something, "in": predict.Something, "period": periods}},

		"show":    {},
		"mark":    {Args: statuses},
		"convert": {},
		"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.pdf")}},

		"summary":  {Flags: map[string]complete.Predictor{"d": predict.Something, "months": predict.Something}},
		"seed":     {Flags: map[string]complete.Predictor{"seed": predict.Something}},
		"settings": {},
		"topic":    {Args: predict.Set{"readme", "numbering", "statuses", "conversion", "storage", "*"}},

		"register": {Flags: map[string]complete.Predictor{"name": predict.Something, "email": predict.Something}},
		"login":    {Flags: map[string]complete.Predictor{"email": predict.Something}},
		"logout":   {},
		"whoami":   {},
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"strict":   predict.Nothing,
		},
	}
}
