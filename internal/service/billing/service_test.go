package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/invoice"
	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
	"github.com/medicore/hms-api/internal/repository/sqlite"
	apperrors "github.com/medicore/hms-api/pkg/errors"
	"github.com/medicore/hms-api/pkg/logger"
	"github.com/medicore/hms-api/pkg/validator"
)

// fakeRenderer records the document it was handed and returns a fixed path.
type fakeRenderer struct {
	doc  *invoice.Document
	path string
	err  error
}

func (f *fakeRenderer) Render(doc *invoice.Document) (string, error) {
	f.doc = doc
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

type fixture struct {
	svc      *Service
	bills    repository.BillRepository
	patients repository.PatientRepository
	renderer *fakeRenderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.InitSchema(context.Background(), db))

	bills := sqlite.NewBillRepository(db)
	patients := sqlite.NewPatientRepository(db)
	renderer := &fakeRenderer{path: "/tmp/Bill_test.pdf"}

	svc := NewService(bills, patients, renderer, validator.New(), "₹", logger.NewLogger(nil))
	return &fixture{svc: svc, bills: bills, patients: patients, renderer: renderer}
}

func (f *fixture) seedPatient(t *testing.T) int64 {
	t.Helper()
	id, err := f.patients.Create(context.Background(), &model.Patient{
		Name: "Asha Rao", Age: 34, Contact: "9876543210",
	})
	require.NoError(t, err)
	return id
}

func TestComposeBillDropsUnparsableRows(t *testing.T) {
	f := newFixture(t)
	patientID := f.seedPatient(t)
	ctx := context.Background()

	composed, err := f.svc.ComposeBill(ctx, &model.ComposeBillRequest{
		Patient: "Asha Rao",
		Items: []model.LineItemInput{
			{Service: "X-Ray", Quantity: "1", Price: "abc"},
			{Service: "Consult", Quantity: "2", Price: "100.0"},
		},
	})
	require.NoError(t, err)

	require.Len(t, composed.Items, 1)
	assert.Equal(t, "Consult", composed.Items[0].Service)
	assert.Equal(t, 200.0, composed.Bill.Total)
	assert.Equal(t, patientID, composed.Bill.PatientID)
	assert.Equal(t, "Consult x2 @₹100.00", composed.Bill.Services)
	assert.Equal(t, "/tmp/Bill_test.pdf", composed.DocumentPath)

	// The renderer saw the same filtered items and total.
	require.NotNil(t, f.renderer.doc)
	assert.Equal(t, 200.0, f.renderer.doc.Total)
	require.Len(t, f.renderer.doc.Items, 1)
}

func TestComposeBillAllInvalidRowsIsNoServices(t *testing.T) {
	f := newFixture(t)
	f.seedPatient(t)
	ctx := context.Background()

	_, err := f.svc.ComposeBill(ctx, &model.ComposeBillRequest{
		Patient: "Asha Rao",
		Items:   []model.LineItemInput{{Service: "A", Quantity: "x", Price: "y"}},
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNoServices))

	bills, err := f.bills.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bills)

	assert.Nil(t, f.renderer.doc)
}

func TestComposeBillSummaryJoinsWithDelimiter(t *testing.T) {
	f := newFixture(t)
	f.seedPatient(t)

	composed, err := f.svc.ComposeBill(context.Background(), &model.ComposeBillRequest{
		Patient: "Asha Rao",
		Items: []model.LineItemInput{
			{Service: "X-Ray", Quantity: "1", Price: "250"},
			{Service: "Consult", Quantity: "2", Price: "100"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "X-Ray x1 @₹250.00 | Consult x2 @₹100.00", composed.Bill.Services)
	assert.Equal(t, 450.0, composed.Bill.Total)
}

func TestComposeBillInvalidPatient(t *testing.T) {
	f := newFixture(t)
	f.seedPatient(t)
	ctx := context.Background()

	for _, identifier := range []string{"9999", "No Such Person"} {
		_, err := f.svc.ComposeBill(ctx, &model.ComposeBillRequest{
			Patient: identifier,
			Items:   []model.LineItemInput{{Service: "Consult", Quantity: "1", Price: "100"}},
		})
		require.Error(t, err, "identifier %q", identifier)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidPatient))
	}

	bills, err := f.bills.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestComposeBillRenderFailureKeepsBill(t *testing.T) {
	f := newFixture(t)
	f.seedPatient(t)
	f.renderer.err = errors.New("disk full")
	ctx := context.Background()

	composed, err := f.svc.ComposeBill(ctx, &model.ComposeBillRequest{
		Patient: "Asha Rao",
		Items:   []model.LineItemInput{{Service: "Consult", Quantity: "1", Price: "100"}},
	})
	require.NoError(t, err)
	assert.Empty(t, composed.DocumentPath)
	assert.Equal(t, "disk full", composed.RenderError)

	bills, err := f.bills.List(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, 100.0, bills[0].Total)
}

func TestComposeBillZeroQuantityIsValid(t *testing.T) {
	f := newFixture(t)
	f.seedPatient(t)

	composed, err := f.svc.ComposeBill(context.Background(), &model.ComposeBillRequest{
		Patient: "Asha Rao",
		Items:   []model.LineItemInput{{Service: "Consult", Quantity: "0", Price: "100"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, composed.Bill.Total)
	require.Len(t, composed.Items, 1)
}

func TestFilterItems(t *testing.T) {
	items := filterItems([]model.LineItemInput{
		{Service: "A", Quantity: "2", Price: "10.5"},
		{Service: "B", Quantity: "two", Price: "10"},
		{Service: "C", Quantity: "1", Price: "ten"},
		{Service: "D", Quantity: " 3 ", Price: " 4 "},
	})
	require.Len(t, items, 2)
	assert.Equal(t, 21.0, items[0].LineTotal)
	assert.Equal(t, 12.0, items[1].LineTotal)
}
