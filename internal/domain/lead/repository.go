package lead

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reinsure/internal/domain"
)

// Filter narrows lead queries. Zero values are ignored.
type Filter struct {
	Campaign string
	Source   string
	Service  string
	Status   domain.Status
	From     *time.Time
	To       *time.Time
}

// Apply adds the filter's conditions to q.
func (f Filter) Apply(q *gorm.DB) *gorm.DB {
	if f.Campaign != "" {
		q = q.Where("utm_campaign = ?", f.Campaign)
	}
	if f.Source != "" {
		q = q.Where("utm_source = ?", f.Source)
	}
	if f.Service != "" {
		q = q.Where("service = ?", f.Service)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", f.To.UTC())
	}
	return q
}

// Repository handles lead data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates lead repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new lead, assigning its ID.
func (r *Repository) Create(ctx context.Context, lead *Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(lead).Error
}

// GetByID retrieves lead by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Lead, error) {
	var lead Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns one page of matching leads, newest first, and the total
// number of matches.
func (r *Repository) List(ctx context.Context, f Filter, limit, offset int) ([]Lead, int64, error) {
	var total int64
	if err := f.Apply(r.db.WithContext(ctx).Model(&Lead{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	leads := make([]Lead, 0)
	err := f.Apply(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// FindAll returns every matching lead, newest first.
func (r *Repository) FindAll(ctx context.Context, f Filter) ([]Lead, error) {
	leads := make([]Lead, 0)
	err := f.Apply(r.db.WithContext(ctx)).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// UpdateStatus sets a lead's status and returns the updated record.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*Lead, error) {
	res := r.db.WithContext(ctx).Model(&Lead{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrLeadNotFound
	}
	return r.GetByID(ctx, id)
}
