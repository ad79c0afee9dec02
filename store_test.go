package invoicing

import (
	"reflect"
	"slices"
	"testing"

	"github.com/etnz/invoicing/date"
)

func ptr[T any](v T) *T { return &v }

func TestStore_AddInvoice(t *testing.T) {
	s := NewStore()
	clientID := s.AddClient(ClientData{Name: "Acme"})

	id := s.AddInvoice(InvoiceData{
		ClientID:  clientID,
		IssueDate: date.MustParse("2025-08-01"),
		DueDate:   date.MustParse("2025-08-31"),
		LineItems: []LineItem{
			{Description: "Design", Quantity: 2, UnitPrice: 100},
			{Description: "Hosting", Quantity: 1, UnitPrice: 50},
		},
		TaxRate: 0.1,
	})

	inv, ok := s.Invoice(id)
	if !ok {
		t.Fatalf("Invoice(%q) not found after AddInvoice", id)
	}
	if inv.Number != "INV-00001" {
		t.Errorf("Number = %q, want %q", inv.Number, "INV-00001")
	}
	if inv.Status != InvoiceDraft {
		t.Errorf("Status = %q, want %q (the default)", inv.Status, InvoiceDraft)
	}
	// The stored total is the pre-tax line-item subtotal; tax is a display concern.
	if inv.TotalAmount != 250 {
		t.Errorf("TotalAmount = %v, want 250", inv.TotalAmount)
	}
	if inv.CreatedAt.IsZero() {
		t.Error("CreatedAt was not assigned")
	}
}

func TestStore_numbering_sequence(t *testing.T) {
	s := NewStore()
	want := []string{"INV-00001", "INV-00002", "INV-00003"}
	for range want {
		s.AddInvoice(InvoiceData{IssueDate: date.Today(), DueDate: date.Today().Add(30)})
	}
	var got []string
	for inv := range s.Invoices() {
		got = append(got, inv.Number)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("numbers = %v, want %v", got, want)
	}
}

func TestStore_numbering_reusesAfterDelete(t *testing.T) {
	// Documented limitation: the number derives from the collection size,
	// so deleting a document makes the next number collide.
	s := NewStore()
	first := s.AddInvoice(InvoiceData{})
	s.AddInvoice(InvoiceData{})
	s.DeleteInvoice(first)

	id := s.AddInvoice(InvoiceData{})
	inv, _ := s.Invoice(id)
	if inv.Number != "INV-00002" {
		t.Errorf("Number = %q, want the colliding %q", inv.Number, "INV-00002")
	}
}

func TestStore_UpdateInvoice(t *testing.T) {
	s := NewStore()
	id := s.AddInvoice(InvoiceData{
		Notes:     "original",
		LineItems: []LineItem{{Description: "Design", Quantity: 2, UnitPrice: 100}},
		TaxRate:   0.1,
	})

	t.Run("empty patch leaves every field unchanged", func(t *testing.T) {
		before, _ := s.Invoice(id)
		if !s.UpdateInvoice(id, InvoicePatch{}) {
			t.Fatal("UpdateInvoice() = false, want true")
		}
		after, _ := s.Invoice(id)
		if !reflect.DeepEqual(before, after) {
			t.Errorf("empty patch changed the invoice:\nbefore %+v\nafter  %+v", before, after)
		}
	})

	t.Run("partial patch merges only provided fields", func(t *testing.T) {
		s.UpdateInvoice(id, InvoicePatch{Notes: ptr("updated")})
		inv, _ := s.Invoice(id)
		if inv.Notes != "updated" {
			t.Errorf("Notes = %q, want %q", inv.Notes, "updated")
		}
		if inv.TaxRate != 0.1 {
			t.Errorf("TaxRate = %v, want untouched 0.1", inv.TaxRate)
		}
		if inv.TotalAmount != 200 {
			t.Errorf("TotalAmount = %v, want untouched 200", inv.TotalAmount)
		}
	})

	t.Run("replacing line items recomputes the total", func(t *testing.T) {
		s.UpdateInvoice(id, InvoicePatch{LineItems: []LineItem{
			{Description: "Audit", Quantity: 3, UnitPrice: 40},
		}})
		inv, _ := s.Invoice(id)
		if inv.TotalAmount != 120 {
			t.Errorf("TotalAmount = %v, want recomputed 120", inv.TotalAmount)
		}
	})

	t.Run("emptying line items recomputes to zero", func(t *testing.T) {
		s.UpdateInvoice(id, InvoicePatch{LineItems: []LineItem{}})
		inv, _ := s.Invoice(id)
		if inv.TotalAmount != 0 {
			t.Errorf("TotalAmount = %v, want 0", inv.TotalAmount)
		}
	})
}

func TestStore_unknownIDsAreNoOps(t *testing.T) {
	s := NewStore()
	s.AddClient(ClientData{Name: "Acme"})
	s.AddInvoice(InvoiceData{Notes: "keep me"})

	snapshot := func() ([]Client, []Invoice, []Quote) {
		return slices.Clone(s.clients), slices.Clone(s.invoices), slices.Clone(s.quotes)
	}
	wantClients, wantInvoices, wantQuotes := snapshot()

	if s.UpdateClient("nonexistent", ClientPatch{Name: ptr("x")}) {
		t.Error("UpdateClient(unknown) = true, want false")
	}
	if s.DeleteClient("nonexistent") {
		t.Error("DeleteClient(unknown) = true, want false")
	}
	if s.UpdateInvoice("nonexistent", InvoicePatch{Notes: ptr("x")}) {
		t.Error("UpdateInvoice(unknown) = true, want false")
	}
	if s.DeleteInvoice("nonexistent") {
		t.Error("DeleteInvoice(unknown) = true, want false")
	}
	if s.SetInvoiceStatus("nonexistent", InvoicePaid) {
		t.Error("SetInvoiceStatus(unknown) = true, want false")
	}
	if s.DeleteQuote("nonexistent") {
		t.Error("DeleteQuote(unknown) = true, want false")
	}

	gotClients, gotInvoices, gotQuotes := snapshot()
	if !reflect.DeepEqual(gotClients, wantClients) ||
		!reflect.DeepEqual(gotInvoices, wantInvoices) ||
		!reflect.DeepEqual(gotQuotes, wantQuotes) {
		t.Error("operations on unknown ids changed the collections")
	}
}

func TestStore_DeleteClient_doesNotCascade(t *testing.T) {
	s := NewStore()
	clientID := s.AddClient(ClientData{Name: "Acme"})
	invID := s.AddInvoice(InvoiceData{ClientID: clientID})

	if !s.DeleteClient(clientID) {
		t.Fatal("DeleteClient() = false, want true")
	}

	inv, ok := s.Invoice(invID)
	if !ok {
		t.Fatal("invoice disappeared with its client")
	}
	if inv.ClientID != clientID {
		t.Errorf("ClientID = %q, want the dangling %q", inv.ClientID, clientID)
	}
	// Resolving the dangling reference yields not-found, not an error.
	if _, ok := s.Client(inv.ClientID); ok {
		t.Error("Client(deleted id) = found, want not found")
	}
}

func TestStore_permissiveStatusByDefault(t *testing.T) {
	s := NewStore()
	id := s.AddInvoice(InvoiceData{})
	s.SetInvoiceStatus(id, InvoicePaid)
	// paid → draft is backwards, and allowed.
	if !s.SetInvoiceStatus(id, InvoiceDraft) {
		t.Error("SetInvoiceStatus(paid → draft) = false, want true in permissive mode")
	}
	inv, _ := s.Invoice(id)
	if inv.Status != InvoiceDraft {
		t.Errorf("Status = %q, want %q", inv.Status, InvoiceDraft)
	}
}

func TestStore_lineItemOwnership(t *testing.T) {
	s := NewStore()
	items := []LineItem{{Description: "Design", Quantity: 1, UnitPrice: 100}}
	id := s.AddInvoice(InvoiceData{LineItems: items})

	// Mutating the caller's slice must not reach into the store.
	items[0].UnitPrice = 999
	inv, _ := s.Invoice(id)
	if inv.LineItems[0].UnitPrice != 100 {
		t.Errorf("UnitPrice = %v, want 100: store shares the caller's slice", inv.LineItems[0].UnitPrice)
	}
}

func TestStore_observerFiresPerMutation(t *testing.T) {
	s := NewStore()
	var fired int
	s.OnChange(func() { fired++ })

	clientID := s.AddClient(ClientData{Name: "Acme"})
	s.UpdateClient(clientID, ClientPatch{Name: ptr("Acme Corp")})
	s.UpdateClient("nonexistent", ClientPatch{}) // no-op, no notification
	s.DeleteClient(clientID)

	if fired != 3 {
		t.Errorf("observer fired %d times, want 3", fired)
	}
}
