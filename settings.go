package invoicing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SettingsFilename is the fixed name of the settings blob inside the data
// directory.
const SettingsFilename = "settings-storage.json"

// CompanyProfile is the issuing company shown on documents.
type CompanyProfile struct {
	Name    string `json:"name" mapstructure:"name"`
	Address string `json:"address" mapstructure:"address"`
	Phone   string `json:"phone" mapstructure:"phone"`
	Email   string `json:"email" mapstructure:"email"`
	VAT     string `json:"vat" mapstructure:"vat"`
	LogoURL string `json:"logoUrl" mapstructure:"logoUrl"`
}

// Settings holds the application settings blob: language, theme and the
// company profile.
type Settings struct {
	Language string         `json:"language" mapstructure:"language"`
	Theme    string         `json:"theme" mapstructure:"theme"`
	Company  CompanyProfile `json:"company" mapstructure:"company"`
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		Language: "en",
		Theme:    "system",
		Company: CompanyProfile{
			Name:    "InvoiceCraft Inc.",
			Address: "123 Business Avenue, Suite 101, New York, NY 10001",
			Phone:   "+1 (555) 123-4567",
			Email:   "contact@invoicecraft.example",
			VAT:     "US123456789",
		},
	}
}

// LoadSettings reads the settings blob from the given data directory.
// Missing or unreadable settings degrade to the defaults, consistent with
// the treat-corrupt-state-as-absence persistence policy.
func LoadSettings(dir string) Settings {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, SettingsFilename))
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return DefaultSettings()
	}
	settings := DefaultSettings()
	if err := v.Unmarshal(&settings); err != nil {
		return DefaultSettings()
	}
	return settings
}

// SaveSettings writes the settings blob into the given data directory.
func SaveSettings(dir string, settings Settings) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, SettingsFilename))
	v.SetConfigType("json")
	v.Set("language", settings.Language)
	v.Set("theme", settings.Theme)
	v.Set("company", settings.Company)
	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("could not write settings: %w", err)
	}
	return nil
}
