package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
)

func seedPatientAndDoctor(t *testing.T, patients repository.PatientRepository, doctors repository.DoctorRepository) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	patientID, err := patients.Create(ctx, testPatient("Asha Rao"))
	require.NoError(t, err)
	doctorID, err := doctors.Create(ctx, testDoctor("Meera Iyer"))
	require.NoError(t, err)
	return patientID, doctorID
}

func TestAppointmentCreateAndList(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	doctors := NewDoctorRepository(db)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	patientID, doctorID := seedPatientAndDoctor(t, patients, doctors)

	id, err := repo.Create(ctx, &model.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2025-04-01",
		Time:      "10:30",
		Purpose:   "Follow-up",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha Rao", rows[0].PatientName)
	assert.Equal(t, "9876543210", rows[0].PatientContact)
	assert.Equal(t, "Meera Iyer", rows[0].DoctorName)
	assert.Equal(t, "2025-04-01", rows[0].Date)
	assert.Equal(t, "10:30", rows[0].Time)
	assert.Equal(t, "Follow-up", rows[0].Purpose)
}

func TestAppointmentOrphanedRowsDropOutOfListing(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	doctors := NewDoctorRepository(db)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	patientID, doctorID := seedPatientAndDoctor(t, patients, doctors)

	_, err := repo.Create(ctx, &model.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2025-04-01",
		Time:      "10:30",
		Purpose:   "Follow-up",
	})
	require.NoError(t, err)

	// Deleting the patient does not cascade: the appointment row survives as
	// an orphan, invisible to the joined listing.
	require.NoError(t, patients.Delete(ctx, patientID))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAppointmentDeleteMissingRowIsSilent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)

	assert.NoError(t, repo.Delete(context.Background(), 777))
}
