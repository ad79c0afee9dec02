// Package cmd implements the CLI application to manage clients, invoices
// and quotes.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/etnz/invoicing"
	"github.com/etnz/invoicing/date"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addClientCmd{}, "clients")
	c.Register(&editClientCmd{}, "clients")
	c.Register(&rmClientCmd{}, "clients")
	c.Register(&clientsCmd{}, "clients")

	c.Register(&addInvoiceCmd{}, "invoices")
	c.Register(&editInvoiceCmd{}, "invoices")
	c.Register(&rmInvoiceCmd{}, "invoices")
	c.Register(&invoicesCmd{}, "invoices")

	c.Register(&addQuoteCmd{}, "quotes")
	c.Register(&editQuoteCmd{}, "quotes")
	c.Register(&rmQuoteCmd{}, "quotes")
	c.Register(&quotesCmd{}, "quotes")

	c.Register(&showCmd{}, "documents")
	c.Register(&markCmd{}, "documents")
	c.Register(&convertCmd{}, "documents")
	c.Register(&exportCmd{}, "documents")

	c.Register(&summaryCmd{}, "application")
	c.Register(&seedCmd{}, "application")
	c.Register(&settingsCmd{}, "application")
	c.Register(&topicCmd{}, "application")

	c.Register(&registerCmd{}, "accounts")
	c.Register(&loginCmd{}, "accounts")
	c.Register(&logoutCmd{}, "accounts")
	c.Register(&whoamiCmd{}, "accounts")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the folder holding the billing data")
var strict = flag.Bool("strict", false, "Refuse status changes that skip a lifecycle step")

// defaultDataDir resolves the data folder: the IVC_DATA_DIR environment
// variable, or ~/.ivc.
func defaultDataDir() string {
	if dir := os.Getenv("IVC_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ivc"
	}
	return filepath.Join(home, ".ivc")
}

// openStore loads the billing store from the data folder and arms the
// auto-save observer, so every applied mutation is persisted immediately.
func openStore() (*invoicing.Store, error) {
	var opts []invoicing.Option
	if *strict {
		opts = append(opts, invoicing.WithStrictTransitions())
	}
	s, err := invoicing.LoadStore(*dataDir, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not load billing data from %q: %w", *dataDir, err)
	}
	invoicing.AutoSave(*dataDir, s)
	return s, nil
}

// appSettings reads the settings blob. Missing settings degrade to defaults.
func appSettings() invoicing.Settings {
	return invoicing.LoadSettings(*dataDir)
}

// currency returns the display currency. The settings blob has no currency
// field yet, so this is a single point of change for when it grows one.
func currency() string { return "USD" }

// issuedRange turns the -in/-period flag pair of the list commands into a
// date range, nil when no -in was given. The returned status is only
// meaningful when ok is false.
func issuedRange(in, period string) (*date.Range, bool, subcommands.ExitStatus) {
	if in == "" {
		return nil, true, subcommands.ExitSuccess
	}
	p, err := date.ParsePeriod(period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false, subcommands.ExitUsageError
	}
	on, err := date.Parse(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -in date: %v\n", err)
		return nil, false, subcommands.ExitUsageError
	}
	r := date.NewRange(on, p)
	return &r, true, subcommands.ExitSuccess
}

// visited reports which flags were explicitly set on the command line,
// which is how edit commands tell "clear this field" from "leave it alone".
func visited(f *flag.FlagSet) map[string]bool {
	seen := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { seen[fl.Name] = true })
	return seen
}
