package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/term"

	"github.com/etnz/invoicing/auth"
)

// askPassword prompts for a password without echoing it. When stdin is not
// a terminal (tests, pipes) it falls back to a plain line read.
func askPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		return string(pw), err
	}
	var pw string
	_, err := fmt.Fscanln(os.Stdin, &pw)
	return pw, err
}

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	name  string
	email string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a local account and sign in" }
func (*registerCmd) Usage() string {
	return `ivc register -name <name> -email <email>

  Creates a local account, asks for a password, and signs in.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name (required)")
	f.StringVar(&c.email, "email", "", "Account email (required)")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" {
		fmt.Fprintf(os.Stderr, "Error: -name and -email are required\n")
		return subcommands.ExitUsageError
	}
	password, err := askPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		return subcommands.ExitFailure
	}

	registry := auth.Load(*dataDir)
	user, err := registry.Register(c.name, c.email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := auth.Save(*dataDir, registry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered and signed in as %s <%s>\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}

// loginCmd holds the flags for the 'login' subcommand.
type loginCmd struct {
	email string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in" }
func (*loginCmd) Usage() string {
	return `ivc login -email <email>

  Asks for the password and signs in.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Account email (required)")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" {
		fmt.Fprintf(os.Stderr, "Error: -email is required\n")
		return subcommands.ExitUsageError
	}
	password, err := askPassword("Password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		return subcommands.ExitFailure
	}

	registry := auth.Load(*dataDir)
	user, err := registry.Login(c.email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := auth.Save(*dataDir, registry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}

// logoutCmd holds the flags for the 'logout' subcommand.
type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out" }
func (*logoutCmd) Usage() string {
	return `ivc logout

  Closes the current session. Signing out twice is harmless.
`
}

func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry := auth.Load(*dataDir)
	registry.Logout()
	if err := auth.Save(*dataDir, registry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Signed out")
	return subcommands.ExitSuccess
}

// whoamiCmd holds the flags for the 'whoami' subcommand.
type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the signed-in account" }
func (*whoamiCmd) Usage() string {
	return `ivc whoami

  Prints the signed-in account, if any.
`
}

func (*whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (c *whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry := auth.Load(*dataDir)
	user, ok := registry.Current()
	if !ok {
		fmt.Println("Not signed in")
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}
