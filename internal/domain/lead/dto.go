package lead

import (
	"strings"

	"reinsure/internal/domain"
)

// SubmitLeadRequest is the public lead form body.
type SubmitLeadRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`

	domain.ServiceDetails

	UTMSource   *string `json:"utm_source"`
	UTMMedium   *string `json:"utm_medium"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMTerm     *string `json:"utm_term"`
	UTMContent  *string `json:"utm_content"`
	Referrer    *string `json:"referrer"`
}

// Normalize trims the contact fields, lowercases the email and drops blank
// optional values.
func (r *SubmitLeadRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.ServiceDetails.Normalize()
	r.UTMSource = domain.Trimmed(r.UTMSource)
	r.UTMMedium = domain.Trimmed(r.UTMMedium)
	r.UTMCampaign = domain.Trimmed(r.UTMCampaign)
	r.UTMTerm = domain.Trimmed(r.UTMTerm)
	r.UTMContent = domain.Trimmed(r.UTMContent)
	r.Referrer = domain.Trimmed(r.Referrer)
}

// Metadata is what the server captures about the submitting client.
type Metadata struct {
	IP        string
	UserAgent string
}

type UpdateStatusRequest struct {
	Status domain.Status `json:"status"`
}

// ListQuery carries the admin list filters and pagination.
type ListQuery struct {
	Filter Filter
	Page   int
	Limit  int
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ListResponse struct {
	Leads      []Lead     `json:"leads"`
	Pagination Pagination `json:"pagination"`
}
