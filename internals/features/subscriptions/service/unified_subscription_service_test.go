package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademiku_backend/internals/constants"
	"akademiku_backend/internals/features/subscriptions/model"
)

func TestCountByStatusGraceBucketDisjoint(t *testing.T) {
	subs := []SubscriptionInfo{
		{Status: model.SubscriptionActive},
		{Status: model.SubscriptionActive, InGracePeriod: true},
		{Status: model.SubscriptionExpired},
		{Status: model.SubscriptionCancelled},
	}
	counts := CountByStatus(subs)

	// A row inside its grace window never counts as active.
	assert.Equal(t, 1, counts[model.SubscriptionActive])
	assert.Equal(t, 1, counts[model.DerivedInGrace])
	assert.Equal(t, 1, counts[model.SubscriptionExpired])
	assert.Equal(t, 1, counts[model.SubscriptionCancelled])
}

func TestBuildSummaryExpiringSoon(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in3 := now.AddDate(0, 0, 3)
	in10 := now.AddDate(0, 0, 10)
	past := now.AddDate(0, 0, -1)

	subs := []SubscriptionInfo{
		{ID: uuid.New(), Type: constants.TypeQuran, Status: model.SubscriptionActive, EndDate: &in3, NeedsRenewal: true},
		{ID: uuid.New(), Type: constants.TypeAcademic, Status: model.SubscriptionActive, EndDate: &in10},
		{ID: uuid.New(), Type: constants.TypeCourse, Status: model.SubscriptionActive, EndDate: &past, InGracePeriod: true, NeedsRenewal: true},
	}
	summary := BuildSummary(subs, now)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.NeedsRenewal)
	require.Len(t, summary.ExpiringSoon, 1)
	assert.Equal(t, constants.TypeQuran, summary.ExpiringSoon[0].Type)
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil, time.Now())
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.ByStatus)
	assert.NotNil(t, summary.ExpiringSoon)
}
