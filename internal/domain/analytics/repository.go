package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"

	"reinsure/internal/domain/lead"
)

// bucket is one row of a GROUP BY over leads. NULL and empty keys are
// merged into "".
type bucket struct {
	Label string
	Total int64
}

// Repository runs aggregate queries over the leads table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) leads(ctx context.Context, f lead.Filter) *gorm.DB {
	return f.Apply(r.db.WithContext(ctx).Model(&lead.Lead{}))
}

// Count returns the number of leads matching f.
func (r *Repository) Count(ctx context.Context, f lead.Filter) (int64, error) {
	var n int64
	err := r.leads(ctx, f).Count(&n).Error
	return n, err
}

// GroupBy counts leads matching f per value of column, largest first.
// A limit of zero returns every group.
func (r *Repository) GroupBy(ctx context.Context, f lead.Filter, column string, limit int) ([]bucket, error) {
	key := "COALESCE(" + column + ", '')"

	q := r.leads(ctx, f).
		Select(key + " AS label, COUNT(*) AS total").
		Group(key).
		Order("total DESC").
		Order("label ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	buckets := make([]bucket, 0)
	err := q.Scan(&buckets).Error
	return buckets, err
}

// CreatedTimes returns the creation time of every lead matching f.
func (r *Repository) CreatedTimes(ctx context.Context, f lead.Filter) ([]time.Time, error) {
	times := make([]time.Time, 0)
	err := r.leads(ctx, f).Order("created_at ASC").Pluck("created_at", &times).Error
	return times, err
}
