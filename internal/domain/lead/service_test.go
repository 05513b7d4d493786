package lead

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinsure/internal/database/dbtest"
	"reinsure/internal/domain"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(event string, _ any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func setupService(t *testing.T) (*Service, *Repository, *recordingPublisher) {
	t.Helper()
	db := dbtest.New(t, &Lead{})
	repo := NewRepository(db)
	pub := &recordingPublisher{}
	return NewService(repo, pub, nil), repo, pub
}

func strPtr(s string) *string { return &s }

func TestSubmitLead_Defaults(t *testing.T) {
	svc, repo, pub := setupService(t)
	ctx := context.Background()

	lead, err := svc.SubmitLead(ctx, &SubmitLeadRequest{
		Name:  "  Asha Rao ",
		Email: " Asha@Example.COM ",
		Phone: "9876543210",
	}, Metadata{IP: "203.0.113.7", UserAgent: "Mozilla/5.0"})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", stored.Name)
	assert.Equal(t, "asha@example.com", stored.Email)
	assert.Equal(t, DefaultSource, stored.UTMSource)
	assert.False(t, stored.EMIRequested)
	assert.Equal(t, domain.StatusNew, stored.Status)
	assert.Equal(t, "203.0.113.7", domain.Value(stored.IP))
	assert.Equal(t, "Mozilla/5.0", domain.Value(stored.UserAgent))
	assert.Nil(t, stored.UTMCampaign)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, []string{"lead.created"}, pub.events)
}

func TestSubmitLead_KeepsAttribution(t *testing.T) {
	svc, _, _ := setupService(t)
	members := 4

	lead, err := svc.SubmitLead(context.Background(), &SubmitLeadRequest{
		Name:  "Ravi",
		Email: "ravi@example.com",
		Phone: "123",
		ServiceDetails: domain.ServiceDetails{
			Service:         strPtr("Health Insurance"),
			NumberOfMembers: &members,
			EMIRequested:    true,
		},
		UTMSource:   strPtr("google"),
		UTMCampaign: strPtr("spring"),
		UTMTerm:     strPtr("  "),
	}, Metadata{IP: "unknown"})
	require.NoError(t, err)

	assert.Equal(t, "google", lead.UTMSource)
	assert.Equal(t, "spring", domain.Value(lead.UTMCampaign))
	assert.Nil(t, lead.UTMTerm)
	assert.True(t, lead.EMIRequested)
	assert.Equal(t, 4, *lead.NumberOfMembers)
}

func TestSubmitLead_MissingContact(t *testing.T) {
	svc, _, pub := setupService(t)

	for _, req := range []SubmitLeadRequest{
		{Email: "a@b.com", Phone: "1"},
		{Name: "A", Phone: "1"},
		{Name: "A", Email: "a@b.com", Phone: "   "},
	} {
		req := req
		_, err := svc.SubmitLead(context.Background(), &req, Metadata{})
		assert.ErrorIs(t, err, ErrMissingContact)
	}
	assert.Empty(t, pub.events)
}

func TestList_PaginationAndFilters(t *testing.T) {
	svc, repo, _ := setupService(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		campaign := "summer"
		if i%2 == 1 {
			campaign = "winter"
		}
		require.NoError(t, repo.Create(ctx, &Lead{
			Name:        "Lead",
			Email:       "lead@example.com",
			Phone:       "1",
			UTMSource:   "google",
			UTMCampaign: &campaign,
			Status:      domain.StatusNew,
			CreatedAt:   base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}

	res, err := svc.List(ctx, ListQuery{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, Pagination{Page: 2, Limit: 3, Total: 7, Pages: 3}, res.Pagination)
	require.Len(t, res.Leads, 3)
	assert.True(t, res.Leads[0].CreatedAt.After(res.Leads[1].CreatedAt))

	res, err = svc.List(ctx, ListQuery{Filter: Filter{Campaign: "winter"}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Pagination.Total)
	assert.Equal(t, defaultLimit, res.Pagination.Limit)
	assert.Equal(t, 1, res.Pagination.Page)

	from := base.Add(2 * 24 * time.Hour)
	to := base.Add(4 * 24 * time.Hour)
	res, err = svc.List(ctx, ListQuery{Filter: Filter{From: &from, To: &to}, Limit: 500})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Pagination.Total)
	assert.Equal(t, maxLimit, res.Pagination.Limit)
}

func TestUpdateStatus(t *testing.T) {
	svc, _, pub := setupService(t)
	ctx := context.Background()

	lead, err := svc.SubmitLead(ctx, &SubmitLeadRequest{Name: "A", Email: "a@b.com", Phone: "1"}, Metadata{})
	require.NoError(t, err)

	// Any status may follow any other.
	for _, s := range []domain.Status{domain.StatusClosed, domain.StatusNew, domain.StatusConverted} {
		updated, err := svc.UpdateStatus(ctx, lead.ID, s)
		require.NoError(t, err)
		assert.Equal(t, s, updated.Status)
	}

	_, err = svc.UpdateStatus(ctx, lead.ID, "qualified")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, uuid.New(), domain.StatusClosed)
	assert.ErrorIs(t, err, ErrLeadNotFound)

	assert.Len(t, pub.events, 4)
}
