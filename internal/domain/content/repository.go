package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the gorm store for one content table. visibleColumn names
// the boolean that gates public listing.
type Repository[T any] struct {
	db            *gorm.DB
	visibleColumn string
}

func NewRepository[T any](db *gorm.DB, visibleColumn string) *Repository[T] {
	return &Repository[T]{db: db, visibleColumn: visibleColumn}
}

// List returns records in display order. Hidden records are included only
// when includeHidden is set.
func (r *Repository[T]) List(ctx context.Context, includeHidden bool) ([]T, error) {
	q := r.db.WithContext(ctx)
	if !includeHidden {
		q = q.Where(r.visibleColumn+" = ?", true)
	}

	items := make([]T, 0)
	err := q.Order("sort_order ASC").Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *Repository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	item := new(T)
	err := r.db.WithContext(ctx).First(item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Repository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *Repository[T]) Save(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
