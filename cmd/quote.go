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

// addQuoteCmd holds the flags for the 'add-quote' subcommand.
type addQuoteCmd struct {
	client string
	issue  string
	valid  string
	notes  string
	status string
	tax    float64
	items  itemsFlag
}

func (*addQuoteCmd) Name() string     { return "add-quote" }
func (*addQuoteCmd) Synopsis() string { return "create a new quote" }
func (*addQuoteCmd) Usage() string {
	return `ivc add-quote -client <client> -item <desc:qty:price> [-item ...] [-issue <date>] [-valid <date>] [-tax <rate>] [-notes <notes>] [-status <status>]

  Creates a quote and prints its number. The issue date defaults to today
  and the validity to thirty days later.
`
}

func (c *addQuoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client id or exact name (required)")
	f.StringVar(&c.issue, "issue", "", "Issue date, YYYY-MM-DD (default today)")
	f.StringVar(&c.valid, "valid", "", "Valid-until date, YYYY-MM-DD (default issue+30d)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes shown on the document")
	f.StringVar(&c.status, "status", "", "Initial status (default draft)")
	f.Float64Var(&c.tax, "tax", 0, "Tax rate as a fraction, e.g. 0.1 for 10%")
	f.Var(&c.items, "item", "Line item as \"description:quantity:unit price\", repeatable")
}

func (c *addQuoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	valid := issue.Add(30)
	if c.valid != "" {
		if valid, err = date.Parse(c.valid); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing valid-until date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	var status invoicing.QuoteStatus
	if c.status != "" {
		if status, err = invoicing.ParseQuoteStatus(c.status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	id := s.AddQuote(invoicing.QuoteData{
		ClientID:   client.ID,
		IssueDate:  issue,
		ValidUntil: valid,
		LineItems:  c.items,
		Notes:      c.notes,
		Status:     status,
		TaxRate:    c.tax,
	})
	q, _ := s.Quote(id)
	fmt.Printf("Created %s (%s)\n", q.Number, id)
	return subcommands.ExitSuccess
}

// editQuoteCmd holds the flags for the 'edit-quote' subcommand.
type editQuoteCmd struct {
	client string
	issue  string
	valid  string
	notes  string
	tax    float64
	items  itemsFlag
}

func (*editQuoteCmd) Name() string     { return "edit-quote" }
func (*editQuoteCmd) Synopsis() string { return "edit an existing quote" }
func (*editQuoteCmd) Usage() string {
	return `ivc edit-quote <quote> [-client <client>] [-issue <date>] [-valid <date>] [-tax <rate>] [-notes <notes>] [-item <desc:qty:price> ...]

  Edits a quote found by id or number. Only the fields given as flags
  change. Giving -item replaces the whole item list and recomputes the
  total.
`
}

func (c *editQuoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "New client id or exact name")
	f.StringVar(&c.issue, "issue", "", "New issue date, YYYY-MM-DD")
	f.StringVar(&c.valid, "valid", "", "New valid-until date, YYYY-MM-DD")
	f.StringVar(&c.notes, "notes", "", "New notes")
	f.Float64Var(&c.tax, "tax", 0, "New tax rate as a fraction")
	f.Var(&c.items, "item", "Replacement line item, repeatable")
}

func (c *editQuoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var patch invoicing.QuotePatch
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
	if seen["valid"] {
		valid, err := date.Parse(c.valid)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing valid-until date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.ValidUntil = &valid
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
	s.UpdateQuote(q.ID, patch)
	fmt.Printf("Updated %s\n", q.Number)
	return subcommands.ExitSuccess
}

// rmQuoteCmd holds the flags for the 'rm-quote' subcommand.
type rmQuoteCmd struct{}

func (*rmQuoteCmd) Name() string     { return "rm-quote" }
func (*rmQuoteCmd) Synopsis() string { return "remove a quote" }
func (*rmQuoteCmd) Usage() string {
	return `ivc rm-quote <quote>

  Removes a quote found by id or number.
`
}

func (*rmQuoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmQuoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	s.DeleteQuote(q.ID)
	fmt.Printf("Removed quote %s\n", q.Number)
	return subcommands.ExitSuccess
}

// quotesCmd holds the flags for the 'quotes' subcommand.
type quotesCmd struct {
	status string
	client string
	in     string
	period string
}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "list the quotes" }
func (*quotesCmd) Usage() string {
	return `ivc quotes [-status <status>] [-client <client>] [-in <date> [-period <period>]]

  Lists the quotes, optionally filtered by status, client, or issue period.
`
}

func (c *quotesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only this status (draft, sent, accepted, rejected)")
	f.StringVar(&c.client, "client", "", "Only this client, by id or exact name")
	f.StringVar(&c.in, "in", "", "Only documents issued in the period containing this date")
	f.StringVar(&c.period, "period", "month", "Period for -in: day, week, month, quarter or year")
}

func (c *quotesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var status invoicing.QuoteStatus
	if c.status != "" {
		if status, err = invoicing.ParseQuoteStatus(c.status); err != nil {
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

	var quotes []invoicing.Quote
	for q := range s.Quotes() {
		if status != "" && q.Status != status {
			continue
		}
		if clientID != "" && q.ClientID != clientID {
			continue
		}
		if within != nil && !within.Contains(q.IssueDate) {
			continue
		}
		quotes = append(quotes, q)
	}
	printMarkdown(renderer.RenderDocumentList(renderer.NewQuoteListView(s, quotes, currency())))
	return subcommands.ExitSuccess
}
