package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/invoicing"
)

// settingsCmd holds the flags for the 'settings' subcommand.
type settingsCmd struct {
	language string
	theme    string
	name     string
	address  string
	phone    string
	email    string
	vat      string
	logo     string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the application settings" }
func (*settingsCmd) Usage() string {
	return `ivc settings [-language <code>] [-theme <theme>] [-company-name <name>] [-company-address <address>] [-company-phone <phone>] [-company-email <email>] [-vat <vat>] [-logo <url>]

  Without flags, prints the current settings. With flags, changes the given
  fields and saves. The company profile appears on every exported document.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.language, "language", "", "Interface language code, e.g. en or fr")
	f.StringVar(&c.theme, "theme", "", "Theme: light, dark or system")
	f.StringVar(&c.name, "company-name", "", "Company name")
	f.StringVar(&c.address, "company-address", "", "Company address")
	f.StringVar(&c.phone, "company-phone", "", "Company phone")
	f.StringVar(&c.email, "company-email", "", "Company email")
	f.StringVar(&c.vat, "vat", "", "Company VAT number")
	f.StringVar(&c.logo, "logo", "", "Company logo URL")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings := appSettings()

	seen := visited(f)
	if len(seen) == 0 {
		fmt.Printf("language: %s\n", settings.Language)
		fmt.Printf("theme:    %s\n", settings.Theme)
		fmt.Printf("company:  %s\n", settings.Company.Name)
		fmt.Printf("          %s\n", settings.Company.Address)
		fmt.Printf("          %s / %s\n", settings.Company.Phone, settings.Company.Email)
		if settings.Company.VAT != "" {
			fmt.Printf("vat:      %s\n", settings.Company.VAT)
		}
		return subcommands.ExitSuccess
	}

	if seen["language"] {
		settings.Language = c.language
	}
	if seen["theme"] {
		settings.Theme = c.theme
	}
	if seen["company-name"] {
		settings.Company.Name = c.name
	}
	if seen["company-address"] {
		settings.Company.Address = c.address
	}
	if seen["company-phone"] {
		settings.Company.Phone = c.phone
	}
	if seen["company-email"] {
		settings.Company.Email = c.email
	}
	if seen["vat"] {
		settings.Company.VAT = c.vat
	}
	if seen["logo"] {
		settings.Company.LogoURL = c.logo
	}

	if err := invoicing.SaveSettings(*dataDir, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Settings saved")
	return subcommands.ExitSuccess
}
