package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
	apperrors "github.com/medicore/hms-api/pkg/errors"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// List joins patient and doctor names for the schedule view. Rows whose
// patient or doctor was deleted are orphans and drop out of the join, matching
// the original listing.
func (r *appointmentRepository) List(ctx context.Context) ([]*model.AppointmentRow, error) {
	query := `
		SELECT a.id, p.name AS patient_name, p.contact AS patient_contact,
		       d.name AS doctor_name, a.date, a.time, a.purpose
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN doctors d ON a.doctor_id = d.id
	`

	rows := []*model.AppointmentRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, apperrors.Storage(err)
	}
	return rows, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := r.db.Rebind(`SELECT id, patient_id, doctor_id, date, time, purpose FROM appointments WHERE id = ?`)

	var apt model.Appointment
	err := r.db.GetContext(ctx, &apt, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &apt, nil
}

func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) (int64, error) {
	query := `INSERT INTO appointments (patient_id, doctor_id, date, time, purpose)
		VALUES (?, ?, ?, ?, ?)`
	return insertReturningID(ctx, r.db, query, a.PatientID, a.DoctorID, a.Date, a.Time, a.Purpose)
}

func (r *appointmentRepository) Update(ctx context.Context, a *model.Appointment) error {
	query := r.db.Rebind(`UPDATE appointments
		SET patient_id = ?, doctor_id = ?, date = ?, time = ?, purpose = ?
		WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, a.PatientID, a.DoctorID, a.Date, a.Time, a.Purpose, a.ID)
	if err != nil {
		return apperrors.Storage(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.Storage(err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment", nil)
	}
	return nil
}

// Delete covers both "cancelled" and "done": either way the row goes away.
func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM appointments WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM appointments`); err != nil {
		return 0, apperrors.Storage(err)
	}
	return n, nil
}
