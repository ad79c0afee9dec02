// Package invoicing implements the core of a client-side billing
// application: clients, invoices and quotes, their monetary totals,
// document numbering, status lifecycle, quote-to-invoice conversion,
// and persistence of the whole collection set to a local JSON blob.
//
// The Store is the ledger of record. It owns all entities; every change
// flows through its operations, and registered observers (typically the
// persistence bridge in loader.go) are notified after each mutation.
package invoicing
