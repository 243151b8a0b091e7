package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"lionreport/internal/errors"
	"lionreport/internal/model"
)

// Renderer turns a Summary into a PDF document.
type Renderer interface {
	Render(summary model.Summary) ([]byte, error)
}

// PDFRenderer renders the weekly report with gofpdf. Rendering is a pure
// function of its input: document metadata dates are pinned so identical
// summaries produce byte-identical output.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Render produces the report PDF. Any library failure is wrapped in
// ErrRenderFailed and propagated; delivery depends on these bytes.
func (r *PDFRenderer) Render(summary model.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetTitle("Weekly L.I.O.N Report", false)

	// A single font face keeps the document's resource dictionary to one
	// entry; registering a second face makes the object order unstable.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 18)
	pdf.CellFormat(0, 12, "Weekly L.I.O.N Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sections := []struct {
		title string
		body  string
	}{
		{"Last Week's Achievements", summary.LastWeek},
		{"Issues", summary.Issues},
		{"Opportunities", summary.Opportunities},
		{"Next Week's Commitments", summary.NextWeek},
	}

	for _, s := range sections {
		pdf.SetFont("Helvetica", "", 14)
		pdf.CellFormat(0, 8, s.title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, s.body, "", "L", false)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}
