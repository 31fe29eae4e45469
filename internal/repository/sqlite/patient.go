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

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT id, name, age, gender, contact, address, date_of_admission FROM patients`

	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, apperrors.Storage(err)
	}
	return patients, nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	query := r.db.Rebind(`SELECT id, name, age, gender, contact, address, date_of_admission FROM patients WHERE id = ?`)

	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("patient", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &patient, nil
}

// Resolve maps a raw identifier to a patient id: all-digit strings are id
// lookups, anything else is a case-insensitive exact name match.
func (r *patientRepository) Resolve(ctx context.Context, identifier string) (int64, error) {
	return resolveID(ctx, r.db, "patients", "patient", identifier)
}

func (r *patientRepository) Summary(ctx context.Context, identifier string) (*model.PatientSummary, error) {
	id, err := r.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	query := r.db.Rebind(`SELECT id, name, age, contact FROM patients WHERE id = ?`)

	var summary model.PatientSummary
	if err := r.db.GetContext(ctx, &summary, query, id); err != nil {
		return nil, apperrors.Storage(err)
	}
	return &summary, nil
}

func (r *patientRepository) Create(ctx context.Context, p *model.Patient) (int64, error) {
	query := `INSERT INTO patients (name, age, gender, contact, address, date_of_admission)
		VALUES (?, ?, ?, ?, ?, ?)`
	return insertReturningID(ctx, r.db, query,
		p.Name, p.Age, p.Gender, p.Contact, p.Address, p.DateOfAdmission)
}

// Update replaces every field of the row. A zero-row update is surfaced as
// NotFound rather than silently succeeding.
func (r *patientRepository) Update(ctx context.Context, p *model.Patient) error {
	query := r.db.Rebind(`UPDATE patients
		SET name = ?, age = ?, gender = ?, contact = ?, address = ?, date_of_admission = ?
		WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Age, p.Gender, p.Contact, p.Address, p.DateOfAdmission, p.ID)
	if err != nil {
		return apperrors.Storage(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.Storage(err)
	}
	if rows == 0 {
		return apperrors.NotFound("patient", nil)
	}
	return nil
}

// Delete is a silent no-op for absent ids. Dependent appointments and bills
// are not cascaded; orphaned rows are accepted.
func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM patients WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}
