package invoicing

import (
	"encoding/json"
	"fmt"
	"io"
)

// The whole collection set is persisted as a single JSON object. Entity
// structs carry json tags matching the persisted attribute names, so the
// codec is a plain round-trip; dates serialize as ISO-8601 strings and
// amounts as native JSON numbers.

// storeBlob is the persisted shape of a Store.
type storeBlob struct {
	Clients  []Client  `json:"clients"`
	Invoices []Invoice `json:"invoices"`
	Quotes   []Quote   `json:"quotes"`
}

// EncodeStore writes the store's collections as an indented JSON object.
func EncodeStore(w io.Writer, s *Store) error {
	blob := storeBlob{Clients: s.clients, Invoices: s.invoices, Quotes: s.quotes}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(blob); err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}
	return nil
}

// DecodeStore reads a store previously written by EncodeStore.
func DecodeStore(r io.Reader, opts ...Option) (*Store, error) {
	var blob storeBlob
	if err := json.NewDecoder(r).Decode(&blob); err != nil {
		return nil, fmt.Errorf("could not decode store: %w", err)
	}
	s := NewStore(opts...)
	if blob.Clients != nil {
		s.clients = blob.Clients
	}
	if blob.Invoices != nil {
		s.invoices = blob.Invoices
	}
	if blob.Quotes != nil {
		s.quotes = blob.Quotes
	}
	return s, nil
}
