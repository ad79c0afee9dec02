package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegister(t *testing.T) {
	r := NewRegistry()
	u, err := r.Register("Jane Doe", "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.PasswordHash == "hunter22" || u.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
	if strings.Contains(u.PasswordHash, "hunter22") {
		t.Error("password hash contains the plain text")
	}
	if cur, ok := r.Current(); !ok || cur.ID != u.ID {
		t.Error("Register did not open a session")
	}
}

func TestRegister_refusals(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register("Jane", "jane@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Register("Other", "JANE@example.com", "different1"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email (case folded) error = %v, want ErrEmailTaken", err)
	}
	if _, err := r.Register("Short", "short@example.com", "abc"); err == nil {
		t.Error("short password accepted")
	}
	if _, err := r.Register("Blank", "  ", "hunter22"); err == nil {
		t.Error("blank email accepted")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after refused registrations, want 1", r.Len())
	}
}

func TestLoginLogout(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register("Jane", "jane@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}
	r.Logout()
	if _, ok := r.Current(); ok {
		t.Fatal("still signed in after Logout")
	}

	if _, err := r.Login("jane@example.com", "wrong-pass"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password error = %v, want ErrBadCredentials", err)
	}
	if _, err := r.Login("nobody@example.com", "hunter22"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown email error = %v, want ErrBadCredentials", err)
	}
	if _, ok := r.Current(); ok {
		t.Error("failed login opened a session")
	}

	u, err := r.Login("jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if cur, ok := r.Current(); !ok || cur.ID != u.ID {
		t.Error("Login did not open a session")
	}
}

func TestLoadSave_roundTrip(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry()
	u, err := r.Register("Jane", "jane@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(dir, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back := Load(dir)
	if back.Len() != 1 {
		t.Fatalf("Len() = %d after reload, want 1", back.Len())
	}
	if cur, ok := back.Current(); !ok || cur.ID != u.ID {
		t.Error("session did not survive the reload")
	}
	// The stored hash still verifies.
	if _, err := back.Login("jane@example.com", "hunter22"); err != nil {
		t.Errorf("Login after reload: %v", err)
	}
}

func TestLoad_missingOrCorrupt(t *testing.T) {
	if r := Load(t.TempDir()); r.Len() != 0 {
		t.Error("missing registry file did not load empty")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, Filename), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if r := Load(dir); r.Len() != 0 {
		t.Error("corrupt registry file did not load empty")
	}
}
