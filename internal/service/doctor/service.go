package doctor

import (
	"context"
	"strings"

	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
	"github.com/medicore/hms-api/pkg/validator"
)

type Service struct {
	repo      repository.DoctorRepository
	validator *validator.Validator
}

func NewService(repo repository.DoctorRepository, v *validator.Validator) *Service {
	return &Service{repo: repo, validator: v}
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.repo.List(ctx)
}

// ListRefs feeds the appointment form's doctor picker.
func (s *Service) ListRefs(ctx context.Context) ([]*model.DoctorRef, error) {
	return s.repo.ListRefs(ctx)
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.DoctorRequest) (*model.Doctor, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	d := &model.Doctor{
		Name:           strings.TrimSpace(req.Name),
		Specialization: strings.TrimSpace(req.Specialization),
		Contact:        strings.TrimSpace(req.Contact),
		Email:          strings.TrimSpace(req.Email),
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return d, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id int64, req *model.DoctorRequest) (*model.Doctor, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	d := &model.Doctor{
		ID:             id,
		Name:           strings.TrimSpace(req.Name),
		Specialization: strings.TrimSpace(req.Specialization),
		Contact:        strings.TrimSpace(req.Contact),
		Email:          strings.TrimSpace(req.Email),
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
