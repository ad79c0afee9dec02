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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date   string
	months int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a billing activity summary" }
func (*summaryCmd) Usage() string {
	return `ivc summary [-d <date>] [-months <n>]

  Displays the dashboard: revenue, outstanding amounts, document counts,
  and the recent monthly activity.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the summary, YYYY-MM-DD")
	f.IntVar(&c.months, "months", 3, "Number of trailing months of activity")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	sum := invoicing.NewSummary(s, on, c.months)
	printMarkdown(renderer.RenderSummary(renderer.NewSummaryView(sum, currency())))
	return subcommands.ExitSuccess
}
