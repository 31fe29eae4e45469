package invoice

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/model"
)

func TestPDFRendererWritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	r := NewPDFRenderer(dir, "")

	ts := time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC)
	path, err := r.Render(&Document{
		PatientInfo: "ID: 1, Name: Asha Rao, Age: 34, Contact: 9876543210",
		Date:        "2025-04-01 10:30:00",
		Items: []model.LineItem{
			{Service: "Consult", Quantity: 2, Price: 100, LineTotal: 200},
		},
		Total:     200,
		Currency:  "₹",
		Timestamp: ts,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Bill_20250401_103000.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPDFRendererCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "invoices")
	r := NewPDFRenderer(dir, "")

	path, err := r.Render(&Document{
		PatientInfo: "ID: 2, Name: John, Age: 40, Contact: 123",
		Date:        "2025-04-01 11:00:00",
		Items:       []model.LineItem{{Service: "X-Ray", Quantity: 1, Price: 250, LineTotal: 250}},
		Total:       250,
		Currency:    "₹",
		Timestamp:   time.Now(),
	})
	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.FileExists(t, path)
}

func TestPDFRendererMissingLogoIsIgnored(t *testing.T) {
	dir := t.TempDir()
	r := NewPDFRenderer(dir, filepath.Join(dir, "no-such-logo.png"))

	_, err := r.Render(&Document{
		PatientInfo: "ID: 3, Name: X, Age: 1, Contact: y",
		Date:        "2025-04-01 12:00:00",
		Items:       []model.LineItem{{Service: "Consult", Quantity: 1, Price: 10, LineTotal: 10}},
		Total:       10,
		Currency:    "₹",
		Timestamp:   time.Now(),
	})
	require.NoError(t, err)
}
