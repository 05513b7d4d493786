package analytics

import (
	"context"
	"fmt"
	"time"

	"reinsure/internal/domain/lead"
)

const (
	topCampaigns = 10
	dailyWindow  = 30 * 24 * time.Hour

	labelDirect       = "Direct"
	labelUnknown      = "Unknown"
	labelNotSpecified = "Not specified"
)

// LeadFinder loads full lead records for export.
type LeadFinder interface {
	FindAll(ctx context.Context, f lead.Filter) ([]lead.Lead, error)
}

// Service builds dashboard reports and exports.
type Service struct {
	repo  *Repository
	leads LeadFinder
	now   func() time.Time
}

func NewService(repo *Repository, leads LeadFinder) *Service {
	return &Service{
		repo:  repo,
		leads: leads,
		now:   time.Now,
	}
}

// Report aggregates leads matching f. Only the date range, campaign and
// source of f are used. "Today" and "this month" start at UTC midnight and
// replace the date range, as does the 30 day daily series.
func (s *Service) Report(ctx context.Context, f lead.Filter) (*Report, error) {
	f = lead.Filter{Campaign: f.Campaign, Source: f.Source, From: f.From, To: f.To}

	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	windowStart := now.Add(-dailyWindow)

	var (
		report Report
		err    error
	)

	if report.Summary.TotalLeads, err = s.repo.Count(ctx, f); err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	if report.Summary.LeadsToday, err = s.repo.Count(ctx, since(f, startOfDay)); err != nil {
		return nil, fmt.Errorf("count leads today: %w", err)
	}
	if report.Summary.LeadsThisMonth, err = s.repo.Count(ctx, since(f, startOfMonth)); err != nil {
		return nil, fmt.Errorf("count leads this month: %w", err)
	}

	campaigns, err := s.repo.GroupBy(ctx, f, "utm_campaign", topCampaigns)
	if err != nil {
		return nil, fmt.Errorf("group by campaign: %w", err)
	}
	report.LeadsByCampaign = make([]CampaignCount, 0, len(campaigns))
	for _, b := range campaigns {
		report.LeadsByCampaign = append(report.LeadsByCampaign, CampaignCount{Campaign: label(b.Label, labelDirect), Count: b.Total})
	}

	sources, err := s.repo.GroupBy(ctx, f, "utm_source", 0)
	if err != nil {
		return nil, fmt.Errorf("group by source: %w", err)
	}
	report.LeadsBySource = make([]SourceCount, 0, len(sources))
	for _, b := range sources {
		report.LeadsBySource = append(report.LeadsBySource, SourceCount{Source: label(b.Label, labelUnknown), Count: b.Total})
	}

	services, err := s.repo.GroupBy(ctx, f, "service", 0)
	if err != nil {
		return nil, fmt.Errorf("group by service: %w", err)
	}
	report.LeadsByService = make([]ServiceCount, 0, len(services))
	for _, b := range services {
		report.LeadsByService = append(report.LeadsByService, ServiceCount{Service: label(b.Label, labelNotSpecified), Count: b.Total})
	}

	statuses, err := s.repo.GroupBy(ctx, f, "status", 0)
	if err != nil {
		return nil, fmt.Errorf("group by status: %w", err)
	}
	report.LeadsByStatus = make([]StatusCount, 0, len(statuses))
	for _, b := range statuses {
		report.LeadsByStatus = append(report.LeadsByStatus, StatusCount{Status: b.Label, Count: b.Total})
	}

	times, err := s.repo.CreatedTimes(ctx, since(f, windowStart))
	if err != nil {
		return nil, fmt.Errorf("daily leads: %w", err)
	}
	report.DailyLeads = daily(times)

	return &report, nil
}

// Export returns every lead matching f, newest first.
func (s *Service) Export(ctx context.Context, f lead.Filter) ([]lead.Lead, error) {
	return s.leads.FindAll(ctx, f)
}

func since(f lead.Filter, from time.Time) lead.Filter {
	f.From = &from
	f.To = nil
	return f
}

// daily buckets ascending times by UTC date.
func daily(times []time.Time) []DailyCount {
	out := make([]DailyCount, 0)
	for _, t := range times {
		date := t.UTC().Format(time.DateOnly)
		if n := len(out); n > 0 && out[n-1].Date == date {
			out[n-1].Count++
			continue
		}
		out = append(out, DailyCount{Date: date, Count: 1})
	}
	return out
}

func label(key, fallback string) string {
	if key == "" {
		return fallback
	}
	return key
}
