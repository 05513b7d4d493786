// Package seed fills a database with the marketing site's starter content
// and, optionally, fake leads for trying out the dashboard.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"reinsure/internal/domain"
	"reinsure/internal/domain/content"
	"reinsure/internal/domain/lead"
)

// Content replaces every service, testimonial and FAQ with the starter set.
func Content(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range content.Models() {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		rows := make([]content.Service, len(services))
		copy(rows, services)
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed services: %w", err)
		}

		ts := make([]content.Testimonial, len(testimonials))
		copy(ts, testimonials)
		if err := tx.Create(&ts).Error; err != nil {
			return fmt.Errorf("seed testimonials: %w", err)
		}

		fs := make([]content.FAQ, len(faqs))
		for i, f := range faqs {
			f.Order = i + 1
			f.IsActive = true
			fs[i] = f
		}
		if err := tx.Create(&fs).Error; err != nil {
			return fmt.Errorf("seed faqs: %w", err)
		}
		return nil
	})
}

var (
	demoSources   = []string{"organic", "google", "facebook", "instagram", "newsletter"}
	demoMediums   = []string{"cpc", "social", "email", "referral"}
	demoCampaigns = []string{"diwali-sale", "monsoon-cover", "fleet-q3", "renewal-drive"}
	demoServices  = []string{
		"Commercial Vehicle Insurance",
		"Two Wheeler Insurance",
		"Long Term Two Wheeler Insurance",
		"Health Insurance",
	}
)

// DemoLeads inserts n fake leads spread over the 60 days before now.
// The same seed always produces the same leads.
func DemoLeads(ctx context.Context, db *gorm.DB, n int, seed int64, now time.Time) ([]lead.Lead, error) {
	faker := gofakeit.New(seed)
	start := now.AddDate(0, 0, -60)

	leads := make([]lead.Lead, 0, n)
	for i := 0; i < n; i++ {
		l := lead.Lead{
			Name:      faker.Name(),
			Email:     faker.Email(),
			Phone:     faker.Phone(),
			UTMSource: faker.RandomString(demoSources),
			Status:    domain.Statuses[faker.IntRange(0, len(domain.Statuses)-1)],
			CreatedAt: faker.DateRange(start, now).UTC(),
		}
		if l.UTMSource != lead.DefaultSource {
			l.UTMMedium = ptr(faker.RandomString(demoMediums))
			l.UTMCampaign = ptr(faker.RandomString(demoCampaigns))
			l.Referrer = ptr(faker.URL())
		}
		if faker.Bool() {
			l.Service = ptr(faker.RandomString(demoServices))
		}
		l.EMIRequested = faker.Bool()
		l.IP = ptr(faker.IPv4Address())
		l.UserAgent = ptr(faker.UserAgent())
		leads = append(leads, l)
	}

	if len(leads) == 0 {
		return leads, nil
	}
	repo := lead.NewRepository(db)
	for i := range leads {
		if err := repo.Create(ctx, &leads[i]); err != nil {
			return nil, fmt.Errorf("seed lead %d: %w", i, err)
		}
	}
	return leads, nil
}

func ptr(s string) *string { return &s }
