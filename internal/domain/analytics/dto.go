package analytics

// Summary holds headline counts.
type Summary struct {
	TotalLeads     int64 `json:"totalLeads"`
	LeadsToday     int64 `json:"leadsToday"`
	LeadsThisMonth int64 `json:"leadsThisMonth"`
}

type CampaignCount struct {
	Campaign string `json:"campaign"`
	Count    int64  `json:"count"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

type ServiceCount struct {
	Service string `json:"service"`
	Count   int64  `json:"count"`
}

// DailyCount is the number of leads created on one UTC calendar date.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Report is the dashboard payload of GET /api/analytics.
type Report struct {
	Summary         Summary         `json:"summary"`
	LeadsByCampaign []CampaignCount `json:"leadsByCampaign"`
	LeadsBySource   []SourceCount   `json:"leadsBySource"`
	LeadsByService  []ServiceCount  `json:"leadsByService"`
	DailyLeads      []DailyCount    `json:"dailyLeads"`
	LeadsByStatus   []StatusCount   `json:"leadsByStatus"`
}
