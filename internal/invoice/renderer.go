// Package invoice turns a composed bill into a printable document. The
// composer hands over structured line items, the computed total, a patient
// description and a timestamp; the renderer picks the output path.
package invoice

import (
	"time"

	"github.com/medicore/hms-api/internal/model"
)

// Document is everything a rendered invoice shows.
type Document struct {
	PatientInfo string
	Date        string
	Items       []model.LineItem
	Total       float64
	Currency    string
	Timestamp   time.Time
}

// Renderer writes a document somewhere durable and returns its path.
type Renderer interface {
	Render(doc *Document) (string, error)
}
