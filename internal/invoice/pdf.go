package invoice

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer writes one PDF per invoice into outputDir, named from the
// invoice timestamp so repeated bills never collide within the same second.
type PDFRenderer struct {
	outputDir string
	logoPath  string
}

func NewPDFRenderer(outputDir, logoPath string) *PDFRenderer {
	return &PDFRenderer{outputDir: outputDir, logoPath: logoPath}
}

func (r *PDFRenderer) Render(doc *Document) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create invoice directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			pdf.ImageOptions(r.logoPath, 10, 10, 0, 20, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.Ln(25)
		}
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Hospital Bill")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr("Patient Info: "+doc.PatientInfo))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date: "+doc.Date)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Services")
	pdf.Ln(9)

	colWidths := []float64{80, 25, 40, 40}
	headers := []string{"Service", "Quantity", "Price", "Total"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range doc.Items {
		pdf.CellFormat(colWidths[0], 8, tr(item.Service), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, tr(fmt.Sprintf("%s%.2f", doc.Currency, item.Price)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, tr(fmt.Sprintf("%s%.2f", doc.Currency, item.LineTotal)), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Total Amount: %s%.2f", doc.Currency, doc.Total)))

	filename := fmt.Sprintf("Bill_%s.pdf", doc.Timestamp.Format("20060102_150405"))
	path := filepath.Join(r.outputDir, filename)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write invoice pdf: %w", err)
	}
	return path, nil
}
