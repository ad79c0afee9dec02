package invoicing

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// StoreFilename is the fixed name of the collections blob inside the data
// directory.
const StoreFilename = "data-storage.json"

// LoadStore reads the store blob from the given data directory. A missing
// file yields a fresh empty store; so does a corrupt one, with a warning:
// unreadable prior state is treated as absence of state, not a fatal error.
func LoadStore(dir string, opts ...Option) (*Store, error) {
	filename := filepath.Join(dir, StoreFilename)
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store file %q: %w", filename, err)
	}
	defer f.Close()

	s, err := DecodeStore(f, opts...)
	if err != nil {
		log.Printf("warning: store file %q is corrupt, starting empty: %v", filename, err)
		return NewStore(opts...), nil
	}
	return s, nil
}

// SaveStore writes the store blob into the given data directory.
func SaveStore(dir string, s *Store) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	filename := filepath.Join(dir, StoreFilename)
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create store file %q: %w", filename, err)
	}
	defer f.Close()
	return EncodeStore(f, s)
}

// AutoSave subscribes a persistence observer to the store: every applied
// mutation rewrites the whole blob. Write failures are logged, not surfaced
// to the mutating caller; a crash between a mutation and its write loses
// that mutation.
func AutoSave(dir string, s *Store) {
	s.OnChange(func() {
		if err := SaveStore(dir, s); err != nil {
			log.Printf("warning: could not persist store: %v", err)
		}
	})
}
