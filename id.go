package invoicing

import (
	"fmt"

	"github.com/google/uuid"
)

// Document number prefixes.
const (
	InvoicePrefix = "INV"
	QuotePrefix   = "QUO"
)

// NewID returns a globally unique opaque identifier.
func NewID() string { return uuid.NewString() }

// DocumentNumber formats the next human-readable number for a document
// collection currently holding count entries, e.g. ("INV", 0) -> "INV-00001".
//
// The counter is the collection size, not a persisted monotonic counter:
// after deletions a later number can collide with an existing one. See
// docs/numbering.md.
func DocumentNumber(prefix string, count int) string {
	return fmt.Sprintf("%s-%05d", prefix, count+1)
}
