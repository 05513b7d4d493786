package quote

import (
	"time"

	"github.com/google/uuid"

	"reinsure/internal/domain"
	"reinsure/internal/notification"
)

// Quote is a request for pricing from the legacy quote form. It is kept
// apart from leads and carries no attribution.
type Quote struct {
	ID    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name  string    `json:"name" gorm:"size:255;not null"`
	Email string    `json:"email" gorm:"size:255;not null"`
	Phone string    `json:"phone" gorm:"size:50;not null"`

	domain.ServiceDetails `gorm:"embedded"`

	Status    domain.Status `json:"status" gorm:"size:20;not null;default:new;index"`
	CreatedAt time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (Quote) TableName() string {
	return "quotes"
}

// Details converts the quote into notification input.
func (q *Quote) Details() notification.QuoteDetails {
	d := notification.QuoteDetails{
		Name:          q.Name,
		Email:         q.Email,
		Phone:         q.Phone,
		Service:       domain.Value(q.Service),
		InsuranceType: domain.Value(q.InsuranceType),
		SubType:       domain.Value(q.SubType),
		VehicleType:   domain.Value(q.VehicleType),
		CoverageType:  domain.Value(q.CoverageType),
		PlanDuration:  domain.Value(q.PlanDuration),
		EMIRequested:  q.EMIRequested,
		Message:       domain.Value(q.Message),
	}
	if q.NumberOfMembers != nil {
		d.NumberOfMembers = *q.NumberOfMembers
	}
	return d
}
