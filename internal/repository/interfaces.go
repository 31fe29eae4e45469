package repository

import (
	"context"

	"github.com/medicore/hms-api/internal/model"
)

// UserRepository backs the login gate.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (int64, error)
}

// PatientRepository is the patients CRUD surface plus the shared id-or-name
// resolve used by appointments, billing and the lookup panel.
type PatientRepository interface {
	List(ctx context.Context) ([]*model.Patient, error)
	Get(ctx context.Context, id int64) (*model.Patient, error)
	Resolve(ctx context.Context, identifier string) (int64, error)
	Summary(ctx context.Context, identifier string) (*model.PatientSummary, error)
	Create(ctx context.Context, p *model.Patient) (int64, error)
	Update(ctx context.Context, p *model.Patient) error
	Delete(ctx context.Context, id int64) error
}

type DoctorRepository interface {
	List(ctx context.Context) ([]*model.Doctor, error)
	ListRefs(ctx context.Context) ([]*model.DoctorRef, error)
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	Resolve(ctx context.Context, identifier string) (int64, error)
	Create(ctx context.Context, d *model.Doctor) (int64, error)
	Update(ctx context.Context, d *model.Doctor) error
	Delete(ctx context.Context, id int64) error
}

type AppointmentRepository interface {
	List(ctx context.Context) ([]*model.AppointmentRow, error)
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	Create(ctx context.Context, a *model.Appointment) (int64, error)
	Update(ctx context.Context, a *model.Appointment) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type BillRepository interface {
	List(ctx context.Context) ([]*model.Bill, error)
	Get(ctx context.Context, id int64) (*model.Bill, error)
	Create(ctx context.Context, b *model.Bill) (int64, error)
	Delete(ctx context.Context, id int64) error
}
