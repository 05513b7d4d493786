package domain

import "strings"

// Status is the follow-up state shared by leads and quotes. Any value may
// follow any other.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
	StatusClosed    Status = "closed"
)

var Statuses = []Status{StatusNew, StatusContacted, StatusConverted, StatusClosed}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ServiceDetails are the insurance classification fields carried by both
// lead and quote submissions.
type ServiceDetails struct {
	Service         *string `json:"service,omitempty" gorm:"size:255;index"`
	Message         *string `json:"message,omitempty" gorm:"type:text"`
	InsuranceType   *string `json:"insuranceType,omitempty" gorm:"size:255"`
	SubType         *string `json:"subType,omitempty" gorm:"size:255"`
	VehicleType     *string `json:"vehicleType,omitempty" gorm:"size:255"`
	CoverageType    *string `json:"coverageType,omitempty" gorm:"size:255"`
	PlanDuration    *string `json:"planDuration,omitempty" gorm:"size:255"`
	NumberOfMembers *int    `json:"numberOfMembers,omitempty"`
	EMIRequested    bool    `json:"emiRequested" gorm:"not null;default:false"`
}

// Normalize trims every text field and drops the blank ones.
func (d *ServiceDetails) Normalize() {
	d.Service = Trimmed(d.Service)
	d.Message = Trimmed(d.Message)
	d.InsuranceType = Trimmed(d.InsuranceType)
	d.SubType = Trimmed(d.SubType)
	d.VehicleType = Trimmed(d.VehicleType)
	d.CoverageType = Trimmed(d.CoverageType)
	d.PlanDuration = Trimmed(d.PlanDuration)
}

// Trimmed returns nil for nil or whitespace-only input.
func Trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Value dereferences s, returning "" for nil.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
