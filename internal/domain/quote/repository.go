package quote

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, q *Quote) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Quote, error) {
	var q Quote
	err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns every quote, newest first.
func (r *Repository) List(ctx context.Context) ([]Quote, error) {
	quotes := make([]Quote, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

// Save writes every column of q.
func (r *Repository) Save(ctx context.Context, q *Quote) error {
	return r.db.WithContext(ctx).Save(q).Error
}
