package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/invoicing"
	"github.com/etnz/invoicing/date"
	"github.com/etnz/invoicing/renderer"
)

func fixtureView() *renderer.DocumentView {
	client := invoicing.Client{ID: "c1", Name: "Acme Corporation", Address: "1 Acme Way"}
	inv := invoicing.Invoice{
		Number:    "INV-00042",
		ClientID:  client.ID,
		IssueDate: date.MustParse("2025-08-01"),
		DueDate:   date.MustParse("2025-08-31"),
		LineItems: []invoicing.LineItem{
			{Description: "Website Development", Quantity: 1, UnitPrice: 5000},
		},
		Notes:   "Thank you for your business!",
		Status:  invoicing.InvoiceSent,
		TaxRate: 0.1,
	}
	return renderer.NewInvoiceView(inv, &client, invoicing.DefaultSettings().Company, "EUR")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, fixtureView()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("output does not start with a PDF header, got %q", buf.String()[:20])
	}
	if buf.Len() < 1000 {
		t.Errorf("output is suspiciously small: %d bytes", buf.Len())
	}
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "INV-00042.pdf")
	if err := SavePDF(path, fixtureView()); err != nil {
		t.Fatalf("SavePDF: %v", err)
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(blob, []byte("%PDF")) {
		t.Error("saved file is not a PDF")
	}
}
