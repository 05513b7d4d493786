package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the identity and timestamps every content record shares.
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *Base) base() *Base { return b }

// Service is an insurance product shown on the marketing site.
type Service struct {
	Base
	Title        string   `json:"title" gorm:"size:255;not null" validate:"required"`
	Description  string   `json:"description" gorm:"type:text;not null" validate:"required"`
	Icon         string   `json:"icon" gorm:"size:100;not null" validate:"required"`
	Category     string   `json:"category" gorm:"size:100;not null;index" validate:"required"`
	Order        int      `json:"order" gorm:"column:sort_order;not null;default:0"`
	IsActive     bool     `json:"isActive" gorm:"not null"`
	SubTypes     []string `json:"subTypes" gorm:"type:text;serializer:json"`
	Features     []string `json:"features" gorm:"type:text;serializer:json"`
	EMIAvailable bool     `json:"emiAvailable" gorm:"not null"`
}

func (Service) TableName() string { return "services" }

func newService() *Service {
	return &Service{IsActive: true, EMIAvailable: true}
}

func (s *Service) normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)
	s.Icon = strings.TrimSpace(s.Icon)
	s.Category = strings.TrimSpace(s.Category)
	s.SubTypes = trimAll(s.SubTypes)
	s.Features = trimAll(s.Features)
}

// Testimonial is a customer quote. Only approved ones are public.
type Testimonial struct {
	Base
	Name       string `json:"name" gorm:"size:255;not null" validate:"required"`
	Role       string `json:"role" gorm:"size:255;not null" validate:"required"`
	Text       string `json:"text" gorm:"type:text;not null" validate:"required"`
	Rating     int    `json:"rating" gorm:"not null" validate:"min=1,max=5"`
	IsApproved bool   `json:"isApproved" gorm:"not null"`
	Order      int    `json:"order" gorm:"column:sort_order;not null;default:0"`
}

func (Testimonial) TableName() string { return "testimonials" }

func newTestimonial() *Testimonial {
	return &Testimonial{Rating: 5}
}

func (t *Testimonial) normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Role = strings.TrimSpace(t.Role)
	t.Text = strings.TrimSpace(t.Text)
}

type FAQ struct {
	Base
	Question string `json:"question" gorm:"type:text;not null" validate:"required"`
	Answer   string `json:"answer" gorm:"type:text;not null" validate:"required"`
	Category string `json:"category" gorm:"size:100;not null"`
	Order    int    `json:"order" gorm:"column:sort_order;not null;default:0"`
	IsActive bool   `json:"isActive" gorm:"not null"`
}

func (FAQ) TableName() string { return "faqs" }

func newFAQ() *FAQ {
	return &FAQ{Category: "general", IsActive: true}
}

func (f *FAQ) normalize() {
	f.Question = strings.TrimSpace(f.Question)
	f.Answer = strings.TrimSpace(f.Answer)
	f.Category = strings.TrimSpace(f.Category)
	if f.Category == "" {
		f.Category = "general"
	}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
