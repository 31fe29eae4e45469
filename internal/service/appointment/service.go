package appointment

import (
	"context"
	"strings"

	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
	apperrors "github.com/medicore/hms-api/pkg/errors"
	"github.com/medicore/hms-api/pkg/validator"
)

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	validator   *validator.Validator
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository, v *validator.Validator) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		validator:   v,
	}
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.AppointmentRow, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

// CreateAppointment resolves the patient identifier before anything is
// written: a failed resolution reports InvalidPatient and leaves the
// appointments table untouched. The doctor id is checked the same way.
func (s *Service) CreateAppointment(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error) {
	apt, err := s.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, apt)
	if err != nil {
		return nil, err
	}
	apt.ID = id
	return apt, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.AppointmentRequest) (*model.Appointment, error) {
	apt, err := s.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	apt.ID = id
	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

// DeleteAppointment removes the row. "Done" and "cancelled" are the same
// operation here; deleting an id that is already gone succeeds silently.
func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) fromRequest(ctx context.Context, req *model.AppointmentRequest) (*model.Appointment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	patientID, err := s.patientRepo.Resolve(ctx, strings.TrimSpace(req.Patient))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidPatient(req.Patient)
		}
		return nil, err
	}

	if _, err := s.doctorRepo.Get(ctx, req.DoctorID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidDoctor(req.DoctorID)
		}
		return nil, err
	}

	return &model.Appointment{
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		Date:      strings.TrimSpace(req.Date),
		Time:      strings.TrimSpace(req.Time),
		Purpose:   strings.TrimSpace(req.Purpose),
	}, nil
}
