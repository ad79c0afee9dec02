package cmd

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/invoicing"
)

// seedCmd holds the flags for the 'seed' subcommand.
type seedCmd struct {
	seed int64
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "fill an empty store with demo data" }
func (*seedCmd) Usage() string {
	return `ivc seed [-seed <n>]

  Populates an empty store with sample clients, invoices and quotes, handy
  for trying the tool out. Refuses to touch a store that already has
  clients.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.seed, "seed", 0, "Random seed for reproducible demo data (0 means random)")
}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var rnd *rand.Rand
	if c.seed != 0 {
		rnd = rand.New(rand.NewSource(c.seed))
	}
	if !invoicing.SeedDemoData(s, rnd) {
		fmt.Fprintf(os.Stderr, "Error: the store already has clients, not seeding\n")
		return subcommands.ExitFailure
	}
	clients, invoices, quotes := s.Counts()
	fmt.Printf("Seeded %d clients, %d invoices and %d quotes\n", clients, invoices, quotes)
	return subcommands.ExitSuccess
}
