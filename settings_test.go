package invoicing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_missingFileIsDefaults(t *testing.T) {
	settings := LoadSettings(t.TempDir())
	if settings != DefaultSettings() {
		t.Errorf("settings from an empty dir = %+v, want the defaults", settings)
	}
}

func TestLoadSettings_corruptFileIsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFilename), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	settings := LoadSettings(dir)
	if settings != DefaultSettings() {
		t.Errorf("settings from a corrupt file = %+v, want the defaults", settings)
	}
}

func TestSettings_roundTrip(t *testing.T) {
	dir := t.TempDir()
	want := Settings{
		Language: "fr",
		Theme:    "dark",
		Company: CompanyProfile{
			Name:    "Atelier Facture",
			Address: "12 rue de la Paix, Paris",
			Phone:   "+33 1 23 45 67 89",
			Email:   "bonjour@atelier.example",
			VAT:     "FR123456789",
		},
	}

	if err := SaveSettings(dir, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got := LoadSettings(dir)
	if got != want {
		t.Errorf("LoadSettings = %+v, want %+v", got, want)
	}
}
