package patient

import (
	"context"
	"strconv"
	"strings"

	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
	apperrors "github.com/medicore/hms-api/pkg/errors"
	"github.com/medicore/hms-api/pkg/validator"
)

type Service struct {
	repo      repository.PatientRepository
	validator *validator.Validator
}

func NewService(repo repository.PatientRepository, v *validator.Validator) *Service {
	return &Service{repo: repo, validator: v}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

// Lookup is the patient-details panel: resolve an id-or-name identifier and
// return the matched row's summary.
func (s *Service) Lookup(ctx context.Context, identifier string) (*model.PatientSummary, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperrors.Validation("identifier is required")
	}
	return s.repo.Summary(ctx, identifier)
}

func (s *Service) CreatePatient(ctx context.Context, req *model.PatientRequest) (*model.Patient, error) {
	p, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id int64, req *model.PatientRequest) (*model.Patient, error) {
	p, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// fromRequest validates the raw form input and parses the age field, which
// arrives as text from the presentation layer.
func (s *Service) fromRequest(req *model.PatientRequest) (*model.Patient, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	age, err := strconv.Atoi(strings.TrimSpace(req.Age))
	if err != nil {
		return nil, apperrors.Validation("age must be a number")
	}

	return &model.Patient{
		Name:            strings.TrimSpace(req.Name),
		Age:             age,
		Gender:          strings.TrimSpace(req.Gender),
		Contact:         strings.TrimSpace(req.Contact),
		Address:         strings.TrimSpace(req.Address),
		DateOfAdmission: strings.TrimSpace(req.DateOfAdmission),
	}, nil
}
