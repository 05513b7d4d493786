package quote

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"reinsure/internal/domain"
	"reinsure/internal/notification"
	"reinsure/internal/pkg/metrics"
	"reinsure/internal/pkg/validator"
)

// Notifier delivers quote notifications without blocking the caller.
type Notifier interface {
	Dispatch(details notification.QuoteDetails)
}

// Publisher receives events for the admin live feed.
type Publisher interface {
	Publish(event string, payload any)
}

type Service struct {
	repo      *Repository
	notifier  Notifier
	publisher Publisher
	metrics   *metrics.Metrics
}

// NewService creates the quote service. notifier, publisher and m may be nil.
func NewService(repo *Repository, notifier Notifier, publisher Publisher, m *metrics.Metrics) *Service {
	return &Service{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		metrics:   m,
	}
}

// Create stores a quote request and hands it to the notifier. The
// notification outcome never affects the result.
func (s *Service) Create(ctx context.Context, req *CreateQuoteRequest) (*Quote, error) {
	req.Normalize()
	if errs := validator.Validate(req); errs != nil {
		return nil, errs
	}

	status := req.Status
	if status == "" {
		status = domain.StatusNew
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	q := &Quote{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		ServiceDetails: req.ServiceDetails,
		Status:         status,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}

	slog.Info("quote captured", "quote_id", q.ID)
	s.metrics.QuoteCreated()
	if s.notifier != nil {
		s.notifier.Dispatch(q.Details())
	}
	if s.publisher != nil {
		s.publisher.Publish("quote.created", q)
	}
	return q, nil
}

func (s *Service) List(ctx context.Context) ([]Quote, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Quote, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update and re-validates the result.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateQuoteRequest) (*Quote, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		q.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		q.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		q.Phone = strings.TrimSpace(*req.Phone)
	}
	setOptional(&q.Service, req.Service)
	setOptional(&q.Message, req.Message)
	setOptional(&q.InsuranceType, req.InsuranceType)
	setOptional(&q.SubType, req.SubType)
	setOptional(&q.VehicleType, req.VehicleType)
	setOptional(&q.CoverageType, req.CoverageType)
	setOptional(&q.PlanDuration, req.PlanDuration)
	if req.NumberOfMembers != nil {
		q.NumberOfMembers = req.NumberOfMembers
	}
	if req.EMIRequested != nil {
		q.EMIRequested = *req.EMIRequested
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		q.Status = *req.Status
	}

	if errs := validateContact(q); errs != nil {
		return nil, errs
	}
	if err := s.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func setOptional(dst **string, v *string) {
	if v != nil {
		*dst = domain.Trimmed(v)
	}
}

func validateContact(q *Quote) validator.Errors {
	errs := validator.Errors{}
	if q.Name == "" {
		errs["name"] = "required"
	}
	if q.Email == "" {
		errs["email"] = "required"
	}
	if q.Phone == "" {
		errs["phone"] = "required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
