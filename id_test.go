package invoicing

import "testing"

func TestDocumentNumber(t *testing.T) {
	testCases := []struct {
		prefix string
		count  int
		want   string
	}{
		{InvoicePrefix, 0, "INV-00001"},
		{InvoicePrefix, 2, "INV-00003"},
		{QuotePrefix, 0, "QUO-00001"},
		{QuotePrefix, 99998, "QUO-99999"},
		{InvoicePrefix, 99999, "INV-100000"}, // past the padding, keeps growing
	}
	for _, tc := range testCases {
		if got := DocumentNumber(tc.prefix, tc.count); got != tc.want {
			t.Errorf("DocumentNumber(%q, %d) = %q, want %q", tc.prefix, tc.count, got, tc.want)
		}
	}
}

func TestNewID_unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID() returned an empty identifier")
		}
		if seen[id] {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		seen[id] = true
	}
}
