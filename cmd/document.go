package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/invoicing"
	"github.com/etnz/invoicing/export"
	"github.com/etnz/invoicing/renderer"
)

// documentView resolves a reference to an invoice or a quote and builds
// its render-ready view. Invoices are tried first; quote numbers carry the
// QUO prefix so the two never collide in practice.
func documentView(s *invoicing.Store, ref string) (*renderer.DocumentView, bool) {
	company := appSettings().Company
	if inv, ok := s.FindInvoice(ref); ok {
		return renderer.NewInvoiceView(inv, clientOf(s, inv.ClientID), company, currency()), true
	}
	if q, ok := s.FindQuote(ref); ok {
		return renderer.NewQuoteView(q, clientOf(s, q.ClientID), company, currency()), true
	}
	return nil, false
}

// clientOf returns the client or nil when the reference dangles.
func clientOf(s *invoicing.Store, id string) *invoicing.Client {
	if c, ok := s.Client(id); ok {
		return &c
	}
	return nil
}

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display an invoice or a quote" }
func (*showCmd) Usage() string {
	return `ivc show <document>

  Displays an invoice or quote found by id or number, with its line items
  and tax-inclusive total.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one document id or number\n")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	v, ok := documentView(s, f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no document matches %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderDocument(v))
	return subcommands.ExitSuccess
}

// markCmd holds the flags for the 'mark' subcommand.
type markCmd struct{}

func (*markCmd) Name() string     { return "mark" }
func (*markCmd) Synopsis() string { return "change the status of a document" }
func (*markCmd) Usage() string {
	return `ivc mark <document> <status>

  Sets the status of an invoice (draft, sent, paid, overdue) or of a quote
  (draft, sent, accepted, rejected). With -strict, changes that skip a
  lifecycle step are refused. See "ivc topic statuses".
`
}

func (*markCmd) SetFlags(f *flag.FlagSet) {}

func (c *markCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: expected a document and a status\n")
		return subcommands.ExitUsageError
	}
	ref, statusArg := f.Arg(0), f.Arg(1)
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if inv, ok := s.FindInvoice(ref); ok {
		status, err := invoicing.ParseInvoiceStatus(statusArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !s.SetInvoiceStatus(inv.ID, status) {
			fmt.Fprintf(os.Stderr, "Error: refused status change to %q\n", status)
			return subcommands.ExitFailure
		}
		fmt.Printf("Marked %s as %s\n", inv.Number, status)
		return subcommands.ExitSuccess
	}
	if q, ok := s.FindQuote(ref); ok {
		status, err := invoicing.ParseQuoteStatus(statusArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !s.SetQuoteStatus(q.ID, status) {
			fmt.Fprintf(os.Stderr, "Error: refused status change to %q\n", status)
			return subcommands.ExitFailure
		}
		fmt.Printf("Marked %s as %s\n", q.Number, status)
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: no document matches %q\n", ref)
	return subcommands.ExitFailure
}

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct{}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "turn a quote into an invoice" }
func (*convertCmd) Usage() string {
	return `ivc convert <quote>

  Creates an invoice from a quote and marks the quote accepted. The new
  invoice is issued today, due in 30 days, and starts as sent. See
  "ivc topic conversion".
`
}

func (*convertCmd) SetFlags(f *flag.FlagSet) {}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one quote id or number\n")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	q, ok := s.FindQuote(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no quote matches %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	invID, err := s.ConvertQuoteToInvoice(q.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	inv, _ := s.Invoice(invID)
	fmt.Printf("Converted %s into %s\n", q.Number, inv.Number)
	return subcommands.ExitSuccess
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a document as PDF" }
func (*exportCmd) Usage() string {
	return `ivc export <document> [-o <file.pdf>]

  Writes an invoice or quote as a printable PDF. The file name defaults to
  the document number.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (default <number>.pdf)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one document id or number\n")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	v, ok := documentView(s, f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no document matches %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = v.Number + ".pdf"
	}
	if !strings.HasSuffix(output, ".pdf") {
		output += ".pdf"
	}
	if err := export.SavePDF(output, v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	abs, _ := filepath.Abs(output)
	fmt.Printf("Exported %s to %s\n", v.Number, abs)
	return subcommands.ExitSuccess
}
