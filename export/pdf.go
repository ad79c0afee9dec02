// Package export writes printable PDF documents from render-ready views.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/etnz/invoicing/renderer"
)

// WritePDF lays out a document view as a one-page A4 PDF.
//
// The view fields are already formatted strings, so the layout here is pure
// geometry: same figures on paper as on screen.
func WritePDF(w io.Writer, v *renderer.DocumentView) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; currency symbols beyond "$" need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, tr(fmt.Sprintf("%s %s", v.Kind, v.Number)))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, tr(v.Company.Name))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{v.Company.Address, v.Company.Email, v.Company.Phone} {
		if line == "" {
			continue
		}
		pdf.Cell(0, 5, tr(line))
		pdf.Ln(5)
	}
	if v.Company.VAT != "" {
		pdf.Cell(0, 5, tr("VAT: "+v.Company.VAT))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 5, "Billed to:")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{v.ClientName, v.ClientAddress, v.ClientEmail} {
		if line == "" {
			continue
		}
		pdf.Cell(0, 5, tr(line))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(60, 5, "Status: "+tr(v.Status))
	pdf.Cell(60, 5, "Issued: "+v.IssueDate)
	pdf.Cell(0, 5, fmt.Sprintf("%s: %s", v.EndDateLabel, v.EndDate))
	pdf.Ln(10)

	// Item table.
	const (
		descW  = 90.0
		qtyW   = 20.0
		priceW = 35.0
		amtW   = 35.0
		rowH   = 7.0
	)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(descW, rowH, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, rowH, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(priceW, rowH, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amtW, rowH, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range v.Items {
		pdf.CellFormat(descW, rowH, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyW, rowH, item.Quantity, "1", 0, "R", false, 0, "")
		pdf.CellFormat(priceW, rowH, tr(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(amtW, rowH, tr(item.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.CellFormat(descW+qtyW, rowH, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(priceW, rowH, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, rowH, tr(v.Subtotal), "1", 1, "R", false, 0, "")
	pdf.CellFormat(descW+qtyW, rowH, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(priceW, rowH, tr(fmt.Sprintf("Tax (%s)", v.TaxRate)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, rowH, tr(v.Tax), "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(descW+qtyW, rowH, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(priceW, rowH, "Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amtW, rowH, tr(v.Total), "1", 1, "R", true, 0, "")

	if v.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(v.Notes), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not generate %s %s: %w", v.Kind, v.Number, err)
	}
	return nil
}

// SavePDF writes the document to a file.
func SavePDF(path string, v *renderer.DocumentView) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()
	if err := WritePDF(f, v); err != nil {
		return err
	}
	return f.Close()
}
