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

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT id, name, specialization, contact, COALESCE(email, '') AS email FROM doctors`

	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, apperrors.Storage(err)
	}
	return doctors, nil
}

// ListRefs returns the id+name pairs the appointment form offers.
func (r *doctorRepository) ListRefs(ctx context.Context) ([]*model.DoctorRef, error) {
	query := `SELECT id, name FROM doctors`

	refs := []*model.DoctorRef{}
	if err := r.db.SelectContext(ctx, &refs, query); err != nil {
		return nil, apperrors.Storage(err)
	}
	return refs, nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	query := r.db.Rebind(`SELECT id, name, specialization, contact, COALESCE(email, '') AS email FROM doctors WHERE id = ?`)

	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("doctor", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Resolve(ctx context.Context, identifier string) (int64, error) {
	return resolveID(ctx, r.db, "doctors", "doctor", identifier)
}

func (r *doctorRepository) Create(ctx context.Context, d *model.Doctor) (int64, error) {
	query := `INSERT INTO doctors (name, specialization, contact, email) VALUES (?, ?, ?, ?)`
	return insertReturningID(ctx, r.db, query, d.Name, d.Specialization, d.Contact, d.Email)
}

func (r *doctorRepository) Update(ctx context.Context, d *model.Doctor) error {
	query := r.db.Rebind(`UPDATE doctors SET name = ?, specialization = ?, contact = ?, email = ? WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, d.Name, d.Specialization, d.Contact, d.Email, d.ID)
	if err != nil {
		return apperrors.Storage(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.Storage(err)
	}
	if rows == 0 {
		return apperrors.NotFound("doctor", nil)
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM doctors WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}
