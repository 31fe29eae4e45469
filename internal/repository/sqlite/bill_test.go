package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/model"
)

func TestBillRoundTrip(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	repo := NewBillRepository(db)
	ctx := context.Background()

	patientID, err := patients.Create(ctx, testPatient("Asha Rao"))
	require.NoError(t, err)

	id, err := repo.Create(ctx, &model.Bill{
		PatientID: patientID,
		Services:  "Consult x2 @₹100.00",
		Total:     200.0,
		Date:      "2025-04-01 10:30:00",
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, patientID, got.PatientID)
	assert.Equal(t, "Consult x2 @₹100.00", got.Services)
	assert.Equal(t, 200.0, got.Total)
	assert.Equal(t, "2025-04-01 10:30:00", got.Date)

	bills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
}
