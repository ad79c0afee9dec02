package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/invoicing"
	"github.com/etnz/invoicing/renderer"
)

// addClientCmd holds the flags for the 'add-client' subcommand.
type addClientCmd struct {
	name    string
	email   string
	phone   string
	address string
}

func (*addClientCmd) Name() string     { return "add-client" }
func (*addClientCmd) Synopsis() string { return "add a new client" }
func (*addClientCmd) Usage() string {
	return `ivc add-client -name <name> [-email <email>] [-phone <phone>] [-address <address>]

  Adds a client to the directory and prints its identifier.
`
}

func (c *addClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client name (required)")
	f.StringVar(&c.email, "email", "", "Contact email")
	f.StringVar(&c.phone, "phone", "", "Contact phone")
	f.StringVar(&c.address, "address", "", "Postal address")
}

func (c *addClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintf(os.Stderr, "Error: -name is required\n")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id := s.AddClient(invoicing.ClientData{
		Name:    c.name,
		Email:   c.email,
		Phone:   c.phone,
		Address: c.address,
	})
	fmt.Printf("Added client %q (%s)\n", c.name, id)
	return subcommands.ExitSuccess
}

// editClientCmd holds the flags for the 'edit-client' subcommand.
type editClientCmd struct {
	name    string
	email   string
	phone   string
	address string
}

func (*editClientCmd) Name() string     { return "edit-client" }
func (*editClientCmd) Synopsis() string { return "edit an existing client" }
func (*editClientCmd) Usage() string {
	return `ivc edit-client <client> [-name <name>] [-email <email>] [-phone <phone>] [-address <address>]

  Edits a client found by id or exact name. Only the fields given as flags
  change; a flag set to the empty string clears the field.
`
}

func (c *editClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New client name")
	f.StringVar(&c.email, "email", "", "New contact email")
	f.StringVar(&c.phone, "phone", "", "New contact phone")
	f.StringVar(&c.address, "address", "", "New postal address")
}

func (c *editClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one client id or name\n")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	client, ok := s.FindClient(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no client matches %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	var patch invoicing.ClientPatch
	seen := visited(f)
	if seen["name"] {
		patch.Name = &c.name
	}
	if seen["email"] {
		patch.Email = &c.email
	}
	if seen["phone"] {
		patch.Phone = &c.phone
	}
	if seen["address"] {
		patch.Address = &c.address
	}
	s.UpdateClient(client.ID, patch)
	fmt.Printf("Updated client %s\n", client.ID)
	return subcommands.ExitSuccess
}

// rmClientCmd holds the flags for the 'rm-client' subcommand.
type rmClientCmd struct{}

func (*rmClientCmd) Name() string     { return "rm-client" }
func (*rmClientCmd) Synopsis() string { return "remove a client" }
func (*rmClientCmd) Usage() string {
	return `ivc rm-client <client>

  Removes a client found by id or exact name. Documents billed to the
  client are kept and show an unknown client from then on.
`
}

func (*rmClientCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one client id or name\n")
		return subcommands.ExitUsageError
	}
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	client, ok := s.FindClient(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no client matches %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	s.DeleteClient(client.ID)
	fmt.Printf("Removed client %q (%s)\n", client.Name, client.ID)
	return subcommands.ExitSuccess
}

// clientsCmd holds the flags for the 'clients' subcommand.
type clientsCmd struct{}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list the clients" }
func (*clientsCmd) Usage() string {
	return `ivc clients

  Lists the clients with their billed totals.
`
}

func (*clientsCmd) SetFlags(f *flag.FlagSet) {}

func (c *clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderClientList(renderer.NewClientListView(s, currency())))
	return subcommands.ExitSuccess
}
