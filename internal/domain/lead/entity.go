package lead

import (
	"time"

	"github.com/google/uuid"

	"reinsure/internal/domain"
)

const DefaultSource = "organic"

// Lead is an attribution-tagged contact submission from the marketing site.
type Lead struct {
	ID    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name  string    `json:"name" gorm:"size:255;not null"`
	Email string    `json:"email" gorm:"size:255;not null"`
	Phone string    `json:"phone" gorm:"size:50;not null"`

	domain.ServiceDetails `gorm:"embedded"`

	// Attribution
	UTMSource   string  `json:"utm_source" gorm:"column:utm_source;size:255;not null;default:organic;index"`
	UTMMedium   *string `json:"utm_medium,omitempty" gorm:"column:utm_medium;size:255"`
	UTMCampaign *string `json:"utm_campaign,omitempty" gorm:"column:utm_campaign;size:255;index"`
	UTMTerm     *string `json:"utm_term,omitempty" gorm:"column:utm_term;size:255"`
	UTMContent  *string `json:"utm_content,omitempty" gorm:"column:utm_content;size:255"`
	Referrer    *string `json:"referrer,omitempty" gorm:"size:2048"`

	// Capture metadata
	IP        *string `json:"ip,omitempty" gorm:"column:ip;size:64"`
	UserAgent *string `json:"userAgent,omitempty" gorm:"type:text"`

	Status    domain.Status `json:"status" gorm:"size:20;not null;default:new;index"`
	CreatedAt time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (Lead) TableName() string {
	return "leads"
}
