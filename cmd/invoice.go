package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/invoicing"
	"github.com/etnz/invoicing/date"
	"github.com/etnz/invoicing/renderer"
)

// addInvoiceCmd holds the flags for the 'add-invoice' subcommand.
type addInvoiceCmd struct {
	client string
	issue  string
	due    string
	notes  string
	status string
	tax    float64
	items  itemsFlag
}

func (*addInvoiceCmd) Name() string     { return "add-invoice" }
func (*addInvoiceCmd) Synopsis() string { return "create a new invoice" }
func (*addInvoiceCmd) Usage() string {
	return `ivc add-invoice -client <client> -item <desc:qty:price> [-item ...] [-issue <date>] [-due <date>] [-tax <rate>] [-notes <notes>] [-status <status>]

  Creates an invoice and prints its number. The issue date defaults to
  today and the due date to thirty days later.
`
}

func (c *addInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client id or exact name (required)")
	f.StringVar(&c.issue, "issue", "", "Issue date, YYYY-MM-DD (default today)")
	f.StringVar(&c.due, "due", "", "Due date, YYYY-MM-DD (default issue+30d)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes shown on the document")
	f.StringVar(&c.status, "status", "", "Initial status (default draft)")
	f.Float64Var(&c.tax, "tax", 0, "Tax rate as a fraction, e.g. 0.1 for 10%")
	f.Var(&c.items, "item", "Line item as \"description:quantity:unit price\", repeatable")
}

func (c *addInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	client, ok := s.FindClient(c.client)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no client matches %q\n", c.client)
		return subcommands.ExitFailure
	}

	issue := date.Today()
	if c.issue != "" {
		if issue, err = date.Parse(c.issue); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing issue date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	due := issue.Add(30)
	if c.due != "" {
		if due, err = date.Parse(c.due); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	var status invoicing.InvoiceStatus
	if c.status != "" {
		if status, err = invoicing.ParseInvoiceStatus(c.status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	id := s.AddInvoice(invoicing.InvoiceData{
		ClientID:  client.ID,
		IssueDate: issue,
		DueDate:   due,
		LineItems: c.items,
		Notes:     c.notes,
		Status:    status,
		TaxRate:   c.tax,
	})
	inv, _ := s.Invoice(id)
	fmt.Printf("Created %s (%s)\n", inv.Number, id)
	return subcommands.ExitSuccess
}

// editInvoiceCmd holds the flags for the 'edit-invoice' subcommand.
type editInvoiceCmd struct {
	client string
	issue  string
	due    string
	notes  string
	tax    float64
	items  itemsFlag
}

func (*editInvoiceCmd) Name() string     { return "edit-invoice" }
func (*editInvoiceCmd) Synopsis() string { return "edit an existing invoice" }
func (*editInvoiceCmd) Usage() string {
	return `ivc edit-invoice <invoice> [-client <client>] [-issue <date>] [-due <date>] [-tax <rate>] [-notes <notes>] [-item <desc:qty:price> ...]

  Edits an invoice found by id or number. Only the fields given as flags
  change. Giving -item replaces the whole item list and recomputes the
  total.
`
}

func (c *editInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "New client id or exact name")
	f.StringVar(&c.issue, "issue", "", "New issue date, YYYY-MM-DD")
	f.StringVar(&c.due, "due", "", "New due date, YYYY-MM-DD")
	f.StringVar(&c.notes, "notes", "", "New notes")
	f.Float64Var(&c.tax, "tax", 0, "New tax rate as a fraction")
	f.Var(&c.items, "item", "Replacement line item, repeatable")
}

func (c *editInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one invoice id or number\n")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	inv, ok := s.FindInvoice(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no invoice matches %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	var patch invoicing.InvoicePatch
	seen := visited(f)
	if seen["client"] {
		client, ok := s.FindClient(c.client)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no client matches %q\n", c.client)
			return subcommands.ExitFailure
		}
		patch.ClientID = &client.ID
	}
	if seen["issue"] {
		issue, err := date.Parse(c.issue)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing issue date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.IssueDate = &issue
	}
	if seen["due"] {
		due, err := date.Parse(c.due)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.DueDate = &due
	}
	if seen["notes"] {
		patch.Notes = &c.notes
	}
	if seen["tax"] {
		patch.TaxRate = &c.tax
	}
	if seen["item"] {
		patch.LineItems = c.items
	}
	s.UpdateInvoice(inv.ID, patch)
	fmt.Printf("Updated %s\n", inv.Number)
	return subcommands.ExitSuccess
}

// rmInvoiceCmd holds the flags for the 'rm-invoice' subcommand.
type rmInvoiceCmd struct{}

func (*rmInvoiceCmd) Name() string     { return "rm-invoice" }
func (*rmInvoiceCmd) Synopsis() string { return "remove an invoice" }
func (*rmInvoiceCmd) Usage() string {
	return `ivc rm-invoice <invoice>

  Removes an invoice found by id or number. See "ivc topic numbering" for
  how removal affects later numbers.
`
}

func (*rmInvoiceCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one invoice id or number\n")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	inv, ok := s.FindInvoice(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no invoice matches %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	s.DeleteInvoice(inv.ID)
	fmt.Printf("Removed invoice %s\n", inv.Number)
	return subcommands.ExitSuccess
}

// invoicesCmd holds the flags for the 'invoices' subcommand.
type invoicesCmd struct {
	status string
	client string
	in     string
	period string
}

func (*invoicesCmd) Name() string     { return "invoices" }
func (*invoicesCmd) Synopsis() string { return "list the invoices" }
func (*invoicesCmd) Usage() string {
	return `ivc invoices [-status <status>] [-client <client>] [-in <date> [-period <period>]]

  Lists the invoices, optionally filtered by status, client, or issue
  period: -in 2025-08-01 -period month keeps the invoices issued in
  August 2025.
`
}

func (c *invoicesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only this status (draft, sent, paid, overdue)")
	f.StringVar(&c.client, "client", "", "Only this client, by id or exact name")
	f.StringVar(&c.in, "in", "", "Only documents issued in the period containing this date")
	f.StringVar(&c.period, "period", "month", "Period for -in: day, week, month, quarter or year")
}

func (c *invoicesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var status invoicing.InvoiceStatus
	if c.status != "" {
		if status, err = invoicing.ParseInvoiceStatus(c.status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	var clientID string
	if c.client != "" {
		client, ok := s.FindClient(c.client)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no client matches %q\n", c.client)
			return subcommands.ExitFailure
		}
		clientID = client.ID
	}

	within, ok, failure := issuedRange(c.in, c.period)
	if !ok {
		return failure
	}

	var invoices []invoicing.Invoice
	for inv := range s.Invoices() {
		if status != "" && inv.Status != status {
			continue
		}
		if clientID != "" && inv.ClientID != clientID {
			continue
		}
		if within != nil && !within.Contains(inv.IssueDate) {
			continue
		}
		invoices = append(invoices, inv)
	}
	printMarkdown(renderer.RenderDocumentList(renderer.NewInvoiceListView(s, invoices, currency())))
	return subcommands.ExitSuccess
}
