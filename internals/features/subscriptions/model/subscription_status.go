package model

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

// Stored subscription statuses. "in_grace_period" is never stored; it is
// derived from an active/expired row whose grace window still runs.
const (
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
	SubscriptionPending   = "pending"
)

// DerivedInGrace is the reporting bucket for rows inside a grace window.
const DerivedInGrace = "in_grace_period"

const defaultGraceDays = 3

type subscriptionMetadata struct {
	GracePeriodEndsAt *time.Time `json:"grace_period_ends_at"`
}

// graceEndsAt resolves the grace deadline: an explicit override in the
// metadata blob wins, otherwise end date plus the default grace window.
// Subscriptions without an end date never enter grace.
func graceEndsAt(metadata datatypes.JSON, endDate *time.Time) *time.Time {
	if len(metadata) > 0 {
		var m subscriptionMetadata
		if err := sonic.Unmarshal(metadata, &m); err == nil && m.GracePeriodEndsAt != nil {
			return m.GracePeriodEndsAt
		}
	}
	if endDate == nil {
		return nil
	}
	g := endDate.AddDate(0, 0, defaultGraceDays)
	return &g
}

// inGracePeriod: the end date passed but the grace deadline has not.
func inGracePeriod(status string, endDate *time.Time, graceEnd *time.Time, now time.Time) bool {
	if status == SubscriptionCancelled || status == SubscriptionPending {
		return false
	}
	if endDate == nil || graceEnd == nil {
		return false
	}
	return now.After(*endDate) && now.Before(*graceEnd)
}

// needsRenewal: expired beyond grace, or expiring within 7 days.
func needsRenewal(status string, endDate *time.Time, graceEnd *time.Time, now time.Time) bool {
	if status == SubscriptionCancelled || status == SubscriptionPending {
		return false
	}
	if endDate == nil {
		return false
	}
	if now.After(*endDate) {
		return graceEnd == nil || now.After(*graceEnd) || inGracePeriod(status, endDate, graceEnd, now)
	}
	return endDate.Sub(now) <= 7*24*time.Hour
}
