package billing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/medicore/hms-api/internal/invoice"
	"github.com/medicore/hms-api/internal/model"
	"github.com/medicore/hms-api/internal/repository"
	apperrors "github.com/medicore/hms-api/pkg/errors"
	"github.com/medicore/hms-api/pkg/logger"
	"github.com/medicore/hms-api/pkg/validator"
)

const dateFormat = "2006-01-02 15:04:05"

type Service struct {
	repo        repository.BillRepository
	patientRepo repository.PatientRepository
	renderer    invoice.Renderer
	validator   *validator.Validator
	currency    string
	log         *logger.Logger
}

func NewService(repo repository.BillRepository, patientRepo repository.PatientRepository,
	renderer invoice.Renderer, v *validator.Validator, currency string, log *logger.Logger) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		renderer:    renderer,
		validator:   v,
		currency:    currency,
		log:         log,
	}
}

func (s *Service) ListBills(ctx context.Context) ([]*model.Bill, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBill(ctx context.Context, id int64) (*model.Bill, error) {
	return s.repo.Get(ctx, id)
}

// ComposeBill runs the billing pipeline: resolve the patient, silently drop
// line items whose quantity or price does not parse, total the rest, persist
// one bill row, then hand the structured items to the renderer. A render
// failure is reported back but never rolls the bill back.
func (s *Service) ComposeBill(ctx context.Context, req *model.ComposeBillRequest) (*model.ComposedBill, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	summary, err := s.patientRepo.Summary(ctx, strings.TrimSpace(req.Patient))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidPatient(req.Patient)
		}
		return nil, err
	}

	items := filterItems(req.Items)
	if len(items) == 0 {
		return nil, apperrors.NoServices()
	}

	var total float64
	parts := make([]string, 0, len(items))
	for _, it := range items {
		total += it.LineTotal
		parts = append(parts, fmt.Sprintf("%s x%d @%s%.2f", it.Service, it.Quantity, s.currency, it.Price))
	}

	now := time.Now()
	bill := &model.Bill{
		PatientID: summary.ID,
		Services:  strings.Join(parts, " | "),
		Total:     total,
		Date:      now.Format(dateFormat),
	}

	id, err := s.repo.Create(ctx, bill)
	if err != nil {
		return nil, err
	}
	bill.ID = id

	composed := &model.ComposedBill{Bill: bill, Items: items}

	patientInfo := fmt.Sprintf("ID: %d, Name: %s, Age: %d, Contact: %s",
		summary.ID, summary.Name, summary.Age, summary.Contact)

	path, err := s.renderer.Render(&invoice.Document{
		PatientInfo: patientInfo,
		Date:        bill.Date,
		Items:       items,
		Total:       total,
		Currency:    s.currency,
		Timestamp:   now,
	})
	if err != nil {
		// The bill row stays; the operator can re-render from it.
		s.log.Error(err, "invoice rendering failed", "bill_id", bill.ID)
		composed.RenderError = err.Error()
		return composed, nil
	}

	composed.DocumentPath = path
	return composed, nil
}

// filterItems parses the raw rows and keeps the ones whose quantity and price
// are numeric. Malformed rows are dropped, not errors; that is the billing
// form's long-standing behavior.
func filterItems(inputs []model.LineItemInput) []model.LineItem {
	items := make([]model.LineItem, 0, len(inputs))
	for _, in := range inputs {
		qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
		if err != nil {
			continue
		}
		items = append(items, model.LineItem{
			Service:   in.Service,
			Quantity:  qty,
			Price:     price,
			LineTotal: float64(qty) * price,
		})
	}
	return items
}
