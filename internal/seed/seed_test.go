package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinsure/internal/database/dbtest"
	"reinsure/internal/domain/content"
	"reinsure/internal/domain/lead"
)

func TestContent_ReplacesExistingRows(t *testing.T) {
	db := dbtest.New(t, content.Models()...)
	ctx := context.Background()

	require.NoError(t, db.Create(&content.FAQ{Question: "Old?", Answer: "Gone", Category: "general", IsActive: true}).Error)

	require.NoError(t, Content(ctx, db))
	require.NoError(t, Content(ctx, db))

	var n int64
	require.NoError(t, db.Model(&content.Service{}).Count(&n).Error)
	assert.EqualValues(t, 4, n)
	require.NoError(t, db.Model(&content.Testimonial{}).Count(&n).Error)
	assert.EqualValues(t, 4, n)
	require.NoError(t, db.Model(&content.FAQ{}).Count(&n).Error)
	assert.EqualValues(t, 15, n)

	var svc content.Service
	require.NoError(t, db.Where("title = ?", "Health Insurance").First(&svc).Error)
	assert.Equal(t, []string{"Individual", "Family Floater", "Senior Citizen"}, svc.SubTypes)
	assert.True(t, svc.EMIAvailable)

	var last content.FAQ
	require.NoError(t, db.Order("sort_order DESC").First(&last).Error)
	assert.Equal(t, 15, last.Order)
	assert.True(t, last.IsActive)
}

func TestDemoLeads(t *testing.T) {
	db := dbtest.New(t, &lead.Lead{})
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	leads, err := DemoLeads(context.Background(), db, 25, 42, now)
	require.NoError(t, err)
	require.Len(t, leads, 25)

	var n int64
	require.NoError(t, db.Model(&lead.Lead{}).Count(&n).Error)
	assert.EqualValues(t, 25, n)

	for _, l := range leads {
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Email)
		assert.True(t, l.Status.Valid())
		assert.False(t, l.CreatedAt.After(now))
		assert.False(t, l.CreatedAt.Before(now.AddDate(0, 0, -60)))
	}

	again, err := DemoLeads(context.Background(), dbtest.New(t, &lead.Lead{}), 25, 42, now)
	require.NoError(t, err)
	assert.Equal(t, leads[0].Name, again[0].Name)
}
