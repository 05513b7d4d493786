package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinsure/internal/database/dbtest"
	"reinsure/internal/domain"
	"reinsure/internal/domain/lead"
)

var fixedNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func setupService(t *testing.T) (*Service, *lead.Repository) {
	t.Helper()
	db := dbtest.New(t, &lead.Lead{})
	leads := lead.NewRepository(db)
	svc := NewService(NewRepository(db), leads)
	svc.now = func() time.Time { return fixedNow }
	return svc, leads
}

type seedLead struct {
	name     string
	campaign *string
	source   string
	service  *string
	status   domain.Status
	at       time.Time
}

func seed(t *testing.T, repo *lead.Repository, rows ...seedLead) {
	t.Helper()
	for _, r := range rows {
		l := &lead.Lead{
			Name:        r.name,
			Email:       r.name + "@example.com",
			Phone:       "555",
			UTMSource:   r.source,
			UTMCampaign: r.campaign,
			Status:      r.status,
			CreatedAt:   r.at,
		}
		l.Service = r.service
		require.NoError(t, repo.Create(context.Background(), l))
	}
}

func seedDefault(t *testing.T, repo *lead.Repository) {
	seed(t, repo,
		seedLead{"a", strPtr("summer"), "google", strPtr("Health"), domain.StatusNew, time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)},
		seedLead{"b", strPtr("summer"), "google", nil, domain.StatusContacted, time.Date(2024, 5, 19, 10, 0, 0, 0, time.UTC)},
		seedLead{"c", nil, "organic", strPtr("Motor"), domain.StatusNew, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)},
		seedLead{"d", strPtr(""), "facebook", strPtr(""), domain.StatusClosed, time.Date(2024, 4, 25, 10, 0, 0, 0, time.UTC)},
		seedLead{"e", strPtr("winter"), "google", strPtr("Health"), domain.StatusConverted, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
	)
}

func TestReport_AllLeads(t *testing.T) {
	svc, repo := setupService(t)
	seedDefault(t, repo)

	report, err := svc.Report(context.Background(), lead.Filter{})
	require.NoError(t, err)

	assert.Equal(t, Summary{TotalLeads: 5, LeadsToday: 1, LeadsThisMonth: 3}, report.Summary)

	assert.Equal(t, []CampaignCount{
		{Campaign: "Direct", Count: 2},
		{Campaign: "summer", Count: 2},
		{Campaign: "winter", Count: 1},
	}, report.LeadsByCampaign)

	assert.Equal(t, []SourceCount{
		{Source: "google", Count: 3},
		{Source: "facebook", Count: 1},
		{Source: "organic", Count: 1},
	}, report.LeadsBySource)

	assert.Equal(t, []ServiceCount{
		{Service: "Not specified", Count: 2},
		{Service: "Health", Count: 2},
		{Service: "Motor", Count: 1},
	}, report.LeadsByService)

	assert.Equal(t, []StatusCount{
		{Status: "new", Count: 2},
		{Status: "closed", Count: 1},
		{Status: "contacted", Count: 1},
		{Status: "converted", Count: 1},
	}, report.LeadsByStatus)

	assert.Equal(t, []DailyCount{
		{Date: "2024-04-25", Count: 1},
		{Date: "2024-05-02", Count: 1},
		{Date: "2024-05-19", Count: 1},
		{Date: "2024-05-20", Count: 1},
	}, report.DailyLeads)
}

func TestReport_FiltersBySource(t *testing.T) {
	svc, repo := setupService(t)
	seedDefault(t, repo)

	report, err := svc.Report(context.Background(), lead.Filter{Source: "google"})
	require.NoError(t, err)

	assert.Equal(t, Summary{TotalLeads: 3, LeadsToday: 1, LeadsThisMonth: 2}, report.Summary)
	assert.Equal(t, []CampaignCount{
		{Campaign: "summer", Count: 2},
		{Campaign: "winter", Count: 1},
	}, report.LeadsByCampaign)
	assert.Len(t, report.DailyLeads, 2)
}

func TestReport_DailySeriesIgnoresDateRange(t *testing.T) {
	svc, repo := setupService(t)
	seedDefault(t, repo)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)
	report, err := svc.Report(context.Background(), lead.Filter{From: &from, To: &to})
	require.NoError(t, err)

	assert.EqualValues(t, 3, report.Summary.TotalLeads)
	assert.Len(t, report.DailyLeads, 4)
	assert.Equal(t, "2024-04-25", report.DailyLeads[0].Date)
}

func TestReport_IgnoresServiceAndStatus(t *testing.T) {
	svc, repo := setupService(t)
	seedDefault(t, repo)

	report, err := svc.Report(context.Background(), lead.Filter{Service: "Motor", Status: domain.StatusClosed})
	require.NoError(t, err)
	assert.EqualValues(t, 5, report.Summary.TotalLeads)
}

func TestReport_NoMatches(t *testing.T) {
	svc, repo := setupService(t)
	seedDefault(t, repo)

	report, err := svc.Report(context.Background(), lead.Filter{Campaign: "does-not-exist"})
	require.NoError(t, err)

	assert.Equal(t, Summary{}, report.Summary)
	for _, groups := range []any{
		report.LeadsByCampaign, report.LeadsBySource, report.LeadsByService,
		report.DailyLeads, report.LeadsByStatus,
	} {
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	}
}

func TestExport_FiltersAndOrders(t *testing.T) {
	svc, repo := setupService(t)
	seedDefault(t, repo)

	leads, err := svc.Export(context.Background(), lead.Filter{Source: "google", Service: "Health"})
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "a", leads[0].Name)
	assert.Equal(t, "e", leads[1].Name)
}
