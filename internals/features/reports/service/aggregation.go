package service

import (
	"math"
	"time"

	"akademiku_backend/internals/features/reports/model"
	sessionModel "akademiku_backend/internals/features/sessions/model"
)

// Pure aggregation functions. No I/O in this file: callers fetch, these
// compute, so every rate here is unit-testable without a database.

// Round1 rounds half-up to one decimal. math.Round would round half away
// from zero, which differs for negative input; rates are never negative
// but the contract is half-up, so state it exactly.
func Round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// AttendanceSample is one session outcome in an aggregation window.
// Reported outcomes carry the teacher's attendance status; unreported ones
// fall back to the session status.
type AttendanceSample struct {
	Type       string
	Status     sessionModel.SessionStatus
	Attendance *model.AttendanceStatus
}

func (s AttendanceSample) countable() bool {
	return s.Status.Countable()
}

func (s AttendanceSample) attended() bool {
	if s.Attendance != nil {
		return s.Attendance.CountsAsAttended()
	}
	// No report filed: a completed session counts as attended.
	return s.Status == sessionModel.SessionCompleted
}

// AttendanceBreakdown is the per-window rollup.
type AttendanceBreakdown struct {
	Total    int     `json:"total"`
	Attended int     `json:"attended"`
	Absent   int     `json:"absent"`
	Rate     float64 `json:"rate"`
}

// AttendanceRate computes attended/total over countable sessions, rounded
// to one decimal. Empty input yields a zeroed breakdown, not NaN.
func AttendanceRate(samples []AttendanceSample) AttendanceBreakdown {
	var b AttendanceBreakdown
	for _, s := range samples {
		if !s.countable() {
			continue
		}
		b.Total++
		if s.attended() {
			b.Attended++
		} else {
			b.Absent++
		}
	}
	if b.Total == 0 {
		return b
	}
	b.Rate = Round1(float64(b.Attended) / float64(b.Total) * 100)
	return b
}

// AttendanceByType splits the window per session type before rating each
// bucket.
func AttendanceByType(samples []AttendanceSample) map[string]AttendanceBreakdown {
	buckets := map[string][]AttendanceSample{}
	for _, s := range samples {
		buckets[s.Type] = append(buckets[s.Type], s)
	}
	out := make(map[string]AttendanceBreakdown, len(buckets))
	for t, list := range buckets {
		out[t] = AttendanceRate(list)
	}
	return out
}

// CompletionPercentage is progress over total, one decimal, zero-guarded.
func CompletionPercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round1(float64(completed) / float64(total) * 100)
}

// DefaultPassingScore applies when a quiz defines no threshold.
const DefaultPassingScore = 60.0

// PassRate computes the share of scores at or above the passing threshold.
// A nil threshold falls back to DefaultPassingScore.
func PassRate(scores []float64, passingScore *float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	threshold := DefaultPassingScore
	if passingScore != nil {
		threshold = *passingScore
	}
	passed := 0
	for _, s := range scores {
		if s >= threshold {
			passed++
		}
	}
	return Round1(float64(passed) / float64(len(scores)) * 100)
}

// AverageRating averages non-nil ratings to one decimal; nil when no
// session in the window was rated.
func AverageRating(ratings []*float64) *float64 {
	var sum float64
	var n int
	for _, r := range ratings {
		if r == nil {
			continue
		}
		sum += *r
		n++
	}
	if n == 0 {
		return nil
	}
	avg := Round1(sum / float64(n))
	return &avg
}

// GracePeriodStatus describes where a subscription stands relative to its
// renewal window.
type GracePeriodStatus struct {
	InGracePeriod     bool       `json:"in_grace_period"`
	GracePeriodEndsAt *time.Time `json:"grace_period_ends_at"`
	DaysRemaining     *int       `json:"days_remaining"`
}

// NewGracePeriodStatus derives the remaining-days counter from a resolved
// grace deadline. DaysRemaining is nil outside a grace window.
func NewGracePeriodStatus(inGrace bool, graceEndsAt *time.Time, now time.Time) GracePeriodStatus {
	status := GracePeriodStatus{InGracePeriod: inGrace, GracePeriodEndsAt: graceEndsAt}
	if inGrace && graceEndsAt != nil {
		days := int(math.Ceil(graceEndsAt.Sub(now).Hours() / 24))
		if days < 0 {
			days = 0
		}
		status.DaysRemaining = &days
	}
	return status
}
