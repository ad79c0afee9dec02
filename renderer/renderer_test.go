package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/invoicing"
	"github.com/etnz/invoicing/date"
)

func TestCurrency(t *testing.T) {
	testCases := []struct {
		amount float64
		code   string
		want   string
	}{
		{6500, "USD", "$6,500.00"},
		{0.1, "USD", "$0.10"},
		{1234.5, "EUR", "€1,234.50"},
		{0, "", "$0.00"},
		{100, "not-a-currency", "$100.00"},
	}
	for _, tc := range testCases {
		if got := Currency(tc.amount, tc.code); got != tc.want {
			t.Errorf("Currency(%v, %q) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestQuantityAndPercent(t *testing.T) {
	if got := Quantity(2); got != "2" {
		t.Errorf("Quantity(2) = %q, want 2", got)
	}
	if got := Quantity(2.5); got != "2.50" {
		t.Errorf("Quantity(2.5) = %q, want 2.50", got)
	}
	if got := Percent(0.1); got != "10%" {
		t.Errorf("Percent(0.1) = %q, want 10%%", got)
	}
	if got := Percent(0.055); got != "5.50%" {
		t.Errorf("Percent(0.055) = %q, want 5.50%%", got)
	}
}

func fixtureInvoice() (invoicing.Invoice, invoicing.Client) {
	client := invoicing.Client{
		ID:      "c1",
		Name:    "Acme Corporation",
		Email:   "contact@acme.example",
		Address: "1 Acme Way",
	}
	inv := invoicing.Invoice{
		ID:        "i1",
		Number:    "INV-00042",
		ClientID:  client.ID,
		IssueDate: date.MustParse("2025-08-01"),
		DueDate:   date.MustParse("2025-08-31"),
		LineItems: []invoicing.LineItem{
			{Description: "Website Development", Quantity: 1, UnitPrice: 5000},
			{Description: "SEO Setup", Quantity: 2, UnitPrice: 750},
		},
		Notes:       "Thank you for your business!",
		Status:      invoicing.InvoiceSent,
		TotalAmount: 6500,
		TaxRate:     0.1,
	}
	return inv, client
}

func TestNewInvoiceView(t *testing.T) {
	inv, client := fixtureInvoice()
	company := invoicing.DefaultSettings().Company

	v := NewInvoiceView(inv, &client, company, "USD")

	if v.Kind != "Invoice" || v.Number != "INV-00042" {
		t.Errorf("header = %s %s, want Invoice INV-00042", v.Kind, v.Number)
	}
	if v.Status != "Sent" {
		t.Errorf("Status = %q, want Sent", v.Status)
	}
	if v.EndDateLabel != "Due date" || v.EndDate != "2025-08-31" {
		t.Errorf("end date = %q %q, want Due date 2025-08-31", v.EndDateLabel, v.EndDate)
	}
	if v.Subtotal != "$6,500.00" {
		t.Errorf("Subtotal = %q, want $6,500.00", v.Subtotal)
	}
	if v.Tax != "$650.00" {
		t.Errorf("Tax = %q, want $650.00", v.Tax)
	}
	// Unlike the stored total, the displayed total includes tax.
	if v.Total != "$7,150.00" {
		t.Errorf("Total = %q, want $7,150.00", v.Total)
	}
	if len(v.Items) != 2 || v.Items[1].Amount != "$1,500.00" {
		t.Errorf("Items = %+v, want 2 rows with $1,500.00 on the second", v.Items)
	}
}

func TestNewInvoiceView_deletedClient(t *testing.T) {
	inv, _ := fixtureInvoice()
	v := NewInvoiceView(inv, nil, invoicing.CompanyProfile{Name: "Co"}, "USD")
	if v.ClientName != "Unknown client" {
		t.Errorf("ClientName = %q, want the unknown placeholder", v.ClientName)
	}
}

func TestRenderDocument(t *testing.T) {
	inv, client := fixtureInvoice()
	v := NewInvoiceView(inv, &client, invoicing.DefaultSettings().Company, "USD")
	out := RenderDocument(v)

	for _, want := range []string{
		"# Invoice INV-00042",
		"Acme Corporation",
		"Website Development",
		"$7,150.00",
		"Thank you for your business!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered document misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "error") {
		t.Errorf("rendered document reports a template error:\n%s", out)
	}
}

func TestRenderLists(t *testing.T) {
	s := invoicing.NewStore()
	clientID := s.AddClient(invoicing.ClientData{Name: "Acme", Email: "a@acme.example"})
	s.AddInvoice(invoicing.InvoiceData{
		ClientID:  clientID,
		IssueDate: date.MustParse("2025-08-01"),
		DueDate:   date.MustParse("2025-08-31"),
		LineItems: []invoicing.LineItem{{Description: "Design", Quantity: 1, UnitPrice: 500}},
	})

	var invoices []invoicing.Invoice
	for inv := range s.Invoices() {
		invoices = append(invoices, inv)
	}

	out := RenderDocumentList(NewInvoiceListView(s, invoices, "USD"))
	for _, want := range []string{"# Invoices", "INV-00001", "Acme", "$500.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("invoice list misses %q:\n%s", want, out)
		}
	}

	out = RenderClientList(NewClientListView(s, "USD"))
	if !strings.Contains(out, "Acme") || !strings.Contains(out, "$500.00") {
		t.Errorf("client list misses the client or its billed total:\n%s", out)
	}

	// Empty lists render a friendly placeholder, not a bare table header.
	out = RenderDocumentList(NewQuoteListView(s, nil, "USD"))
	if !strings.Contains(out, "Nothing here yet.") {
		t.Errorf("empty quote list misses the placeholder:\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	s := invoicing.NewStore()
	clientID := s.AddClient(invoicing.ClientData{Name: "Acme"})
	id := s.AddInvoice(invoicing.InvoiceData{
		ClientID:  clientID,
		IssueDate: date.MustParse("2025-08-05"),
		DueDate:   date.MustParse("2025-09-04"),
		LineItems: []invoicing.LineItem{{Description: "Design", Quantity: 1, UnitPrice: 1000}},
	})
	s.SetInvoiceStatus(id, invoicing.InvoicePaid)

	sum := invoicing.NewSummary(s, date.MustParse("2025-08-14"), 3)
	out := RenderSummary(NewSummaryView(sum, "USD"))

	for _, want := range []string{"2025-08-14", "$1,000.00", "2025-08"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "error") {
		t.Errorf("summary reports a template error:\n%s", out)
	}
}
