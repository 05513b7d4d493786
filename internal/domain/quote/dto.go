package quote

import (
	"strings"

	"reinsure/internal/domain"
)

// CreateQuoteRequest is the public quote form body.
type CreateQuoteRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`

	domain.ServiceDetails

	Status domain.Status `json:"status"`
}

func (r *CreateQuoteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.ServiceDetails.Normalize()
}

// UpdateQuoteRequest is a partial update; nil fields are left unchanged.
type UpdateQuoteRequest struct {
	Name            *string        `json:"name"`
	Email           *string        `json:"email"`
	Phone           *string        `json:"phone"`
	Service         *string        `json:"service"`
	Message         *string        `json:"message"`
	InsuranceType   *string        `json:"insuranceType"`
	SubType         *string        `json:"subType"`
	VehicleType     *string        `json:"vehicleType"`
	CoverageType    *string        `json:"coverageType"`
	PlanDuration    *string        `json:"planDuration"`
	NumberOfMembers *int           `json:"numberOfMembers"`
	EMIRequested    *bool          `json:"emiRequested"`
	Status          *domain.Status `json:"status"`
}
