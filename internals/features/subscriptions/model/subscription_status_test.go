package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGraceEndsAtDefault(t *testing.T) {
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	g := graceEndsAt(nil, &end)
	require.NotNil(t, g)
	assert.Equal(t, end.AddDate(0, 0, 3), *g)

	assert.Nil(t, graceEndsAt(nil, nil))
}

func TestGraceEndsAtMetadataOverride(t *testing.T) {
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	meta := datatypes.JSON([]byte(`{"grace_period_ends_at":"2026-03-15T00:00:00Z"}`))
	g := graceEndsAt(meta, &end)
	require.NotNil(t, g)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *g)
}

func TestGraceEndsAtBrokenMetadataFallsBack(t *testing.T) {
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	g := graceEndsAt(datatypes.JSON([]byte(`{not json`)), &end)
	require.NotNil(t, g)
	assert.Equal(t, end.AddDate(0, 0, 3), *g)
}

func TestIsInGracePeriod(t *testing.T) {
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	sub := QuranSubscriptionModel{
		QuranSubscriptionStatus:  SubscriptionActive,
		QuranSubscriptionEndDate: &end,
	}

	// One day past the end date, inside the 3-day default window.
	assert.True(t, sub.IsInGracePeriod(end.AddDate(0, 0, 1)))
	// Before the end date there is no grace.
	assert.False(t, sub.IsInGracePeriod(end.AddDate(0, 0, -1)))
	// Past the grace deadline.
	assert.False(t, sub.IsInGracePeriod(end.AddDate(0, 0, 4)))

	// Cancelled rows never enter grace.
	sub.QuranSubscriptionStatus = SubscriptionCancelled
	assert.False(t, sub.IsInGracePeriod(end.AddDate(0, 0, 1)))
}

func TestNeedsRenewal(t *testing.T) {
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	sub := AcademicSubscriptionModel{
		AcademicSubscriptionStatus:  SubscriptionActive,
		AcademicSubscriptionEndDate: &end,
	}

	// Expiring within 7 days.
	assert.True(t, sub.NeedsRenewal(end.AddDate(0, 0, -3)))
	// Far from expiry.
	assert.False(t, sub.NeedsRenewal(end.AddDate(0, 0, -30)))
	// In grace: still renewable.
	assert.True(t, sub.NeedsRenewal(end.AddDate(0, 0, 1)))
	// Expired beyond grace.
	assert.True(t, sub.NeedsRenewal(end.AddDate(0, 0, 10)))
	// No end date: nothing to renew.
	sub.AcademicSubscriptionEndDate = nil
	assert.False(t, sub.NeedsRenewal(end))
}
