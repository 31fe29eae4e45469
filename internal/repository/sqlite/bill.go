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

type billRepository struct {
	db *sqlx.DB
}

func NewBillRepository(db *sqlx.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) List(ctx context.Context) ([]*model.Bill, error) {
	query := `SELECT id, patient_id, services, total, date FROM bills`

	bills := []*model.Bill{}
	if err := r.db.SelectContext(ctx, &bills, query); err != nil {
		return nil, apperrors.Storage(err)
	}
	return bills, nil
}

func (r *billRepository) Get(ctx context.Context, id int64) (*model.Bill, error) {
	query := r.db.Rebind(`SELECT id, patient_id, services, total, date FROM bills WHERE id = ?`)

	var bill model.Bill
	err := r.db.GetContext(ctx, &bill, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("bill", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &bill, nil
}

// Create persists the bill inside a transaction so a storage failure commits
// nothing.
func (r *billRepository) Create(ctx context.Context, b *model.Bill) (int64, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`INSERT INTO bills (patient_id, services, total, date)
			VALUES (?, ?, ?, ?) RETURNING id`)
		if err := tx.QueryRowxContext(ctx, query, b.PatientID, b.Services, b.Total, b.Date).Scan(&id); err != nil {
			return apperrors.Storage(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *billRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM bills WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}
