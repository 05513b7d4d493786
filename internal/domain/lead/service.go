package lead

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"reinsure/internal/domain"
	"reinsure/internal/pkg/metrics"
	"reinsure/internal/pkg/validator"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 100
)

// Publisher receives events for the admin live feed.
type Publisher interface {
	Publish(event string, payload any)
}

// Service handles lead business logic
type Service struct {
	repo      *Repository
	publisher Publisher
	metrics   *metrics.Metrics
}

// NewService creates lead service. publisher and m may be nil.
func NewService(repo *Repository, publisher Publisher, m *metrics.Metrics) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
	}
}

// SubmitLead stores a public lead submission as a new lead.
func (s *Service) SubmitLead(ctx context.Context, req *SubmitLeadRequest, meta Metadata) (*Lead, error) {
	req.Normalize()
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrMissingContact
	}

	source := DefaultSource
	if req.UTMSource != nil {
		source = *req.UTMSource
	}

	lead := &Lead{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		ServiceDetails: req.ServiceDetails,
		UTMSource:      source,
		UTMMedium:      req.UTMMedium,
		UTMCampaign:    req.UTMCampaign,
		UTMTerm:        req.UTMTerm,
		UTMContent:     req.UTMContent,
		Referrer:       req.Referrer,
		IP:             optional(meta.IP),
		UserAgent:      optional(meta.UserAgent),
		Status:         domain.StatusNew,
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	slog.Info("lead captured", "lead_id", lead.ID, "utm_source", lead.UTMSource)
	s.metrics.LeadCreated(lead.UTMSource)
	if s.publisher != nil {
		s.publisher.Publish("lead.created", lead)
	}
	return lead, nil
}

// GetByID returns a lead or ErrLeadNotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Lead, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of leads matching q.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	leads, total, err := s.repo.List(ctx, q.Filter, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &ListResponse{
		Leads: leads,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// UpdateStatus moves a lead to any status in the enum.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*Lead, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	lead, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.Publish("lead.status_changed", lead)
	}
	return lead, nil
}

func optional(s string) *string {
	return domain.Trimmed(&s)
}
