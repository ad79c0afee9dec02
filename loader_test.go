package invoicing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStore_missingFileIsEmpty(t *testing.T) {
	s, err := LoadStore(t.TempDir())
	if err != nil {
		t.Fatalf("LoadStore on an empty dir: %v", err)
	}
	if !s.IsEmpty() {
		t.Error("store loaded from a missing file is not empty")
	}
}

func TestLoadStore_corruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, StoreFilename), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	// A corrupt file must not block startup: the loader warns and starts fresh.
	s, err := LoadStore(dir)
	if err != nil {
		t.Fatalf("LoadStore on a corrupt file: %v", err)
	}
	if !s.IsEmpty() {
		t.Error("store loaded from a corrupt file is not empty")
	}
}

func TestSaveStore_roundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewStore()
	s.AddClient(ClientData{Name: "Acme"})
	s.AddInvoice(InvoiceData{Notes: "first"})

	if err := SaveStore(dir, s); err != nil {
		t.Fatalf("SaveStore: %v", err)
	}
	back, err := LoadStore(dir)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	clients, invoices, quotes := back.Counts()
	if clients != 1 || invoices != 1 || quotes != 0 {
		t.Errorf("reloaded counts = %d/%d/%d, want 1/1/0", clients, invoices, quotes)
	}
}

func TestSaveStore_createsDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if err := SaveStore(dir, NewStore()); err != nil {
		t.Fatalf("SaveStore into a missing dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, StoreFilename)); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestAutoSave_persistsOnMutation(t *testing.T) {
	dir := t.TempDir()
	s := NewStore()
	AutoSave(dir, s)

	clientID := s.AddClient(ClientData{Name: "Acme"})

	back, err := LoadStore(dir)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if _, ok := back.Client(clientID); !ok {
		t.Error("mutation was not persisted by the change observer")
	}

	// Each later mutation overwrites with the current state.
	s.DeleteClient(clientID)
	back, _ = LoadStore(dir)
	if !back.IsEmpty() {
		t.Error("deletion was not persisted by the change observer")
	}
}
