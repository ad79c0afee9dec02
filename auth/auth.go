// Package auth keeps the local user registry and the active session.
//
// Accounts are stored alongside the billing data, in a single JSON blob.
// Passwords are kept as bcrypt hashes; the plain text never touches the
// disk. This is a single-workstation registry, not a network-facing one.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Filename is the fixed name of the registry blob inside the data directory.
const Filename = "auth-storage.json"

// MinPasswordLen is the shortest password Register accepts.
const MinPasswordLen = 6

var (
	// ErrEmailTaken is returned by Register when the email already has an account.
	ErrEmailTaken = errors.New("an account already exists for this email")
	// ErrBadCredentials is returned by Login on an unknown email or a wrong password.
	ErrBadCredentials = errors.New("invalid email or password")
)

// User is a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Registry holds the known users and which one, if any, is signed in.
type Registry struct {
	users   []User
	session string // user id, empty when signed out
}

// NewRegistry returns an empty registry with nobody signed in.
func NewRegistry() *Registry { return &Registry{} }

// Register creates an account and signs it in.
//
// The email is matched case-insensitively against existing accounts.
func (r *Registry) Register(name, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, errors.New("email is required")
	}
	if len(password) < MinPasswordLen {
		return User{}, fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	if _, found := r.findByEmail(email); found {
		return User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("could not hash password: %w", err)
	}
	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	r.users = append(r.users, u)
	r.session = u.ID
	return u, nil
}

// Login verifies the credentials and opens a session.
//
// The error is the same for an unknown email and a wrong password, so the
// registry does not leak which emails have accounts.
func (r *Registry) Login(email, password string) (User, error) {
	u, found := r.findByEmail(email)
	if !found {
		return User{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrBadCredentials
	}
	r.session = u.ID
	return u, nil
}

// Logout closes the session. Signing out twice is harmless.
func (r *Registry) Logout() { r.session = "" }

// Current returns the signed-in user, if any.
func (r *Registry) Current() (User, bool) {
	if r.session == "" {
		return User{}, false
	}
	for _, u := range r.users {
		if u.ID == r.session {
			return u, true
		}
	}
	return User{}, false
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.users) }

func (r *Registry) findByEmail(email string) (User, bool) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}

// registryBlob is the persisted shape of the registry.
type registryBlob struct {
	Users   []User `json:"users"`
	Session string `json:"session,omitempty"`
}

// Encode writes the registry as indented JSON.
func Encode(w io.Writer, r *Registry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(registryBlob{Users: r.users, Session: r.session})
}

// Decode reads a registry written by Encode.
func Decode(rd io.Reader) (*Registry, error) {
	var blob registryBlob
	if err := json.NewDecoder(rd).Decode(&blob); err != nil {
		return nil, fmt.Errorf("invalid user registry: %w", err)
	}
	return &Registry{users: blob.Users, session: blob.Session}, nil
}

// Load reads the registry from the data directory. A missing or corrupt
// file yields an empty registry, never an error: authentication must not
// block startup.
func Load(dir string) *Registry {
	f, err := os.Open(filepath.Join(dir, Filename))
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry()
	}
	if err != nil {
		log.Printf("warning: cannot read user registry: %v, starting empty", err)
		return NewRegistry()
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		log.Printf("warning: %v, starting empty", err)
		return NewRegistry()
	}
	return r
}

// Save writes the registry into the data directory, creating it if needed.
func Save(dir string, r *Registry) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	f, err := os.Create(filepath.Join(dir, Filename))
	if err != nil {
		return fmt.Errorf("could not create registry file: %w", err)
	}
	defer f.Close()
	if err := Encode(f, r); err != nil {
		return fmt.Errorf("could not write registry: %w", err)
	}
	return nil
}
