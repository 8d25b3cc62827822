package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"akademiku_backend/internals/features/reports/model"
	sessionModel "akademiku_backend/internals/features/sessions/model"
)

func attendancePtr(s model.AttendanceStatus) *model.AttendanceStatus { return &s }

func TestRound1HalfUp(t *testing.T) {
	assert.Equal(t, 0.3, Round1(0.25))
	assert.Equal(t, 66.7, Round1(66.666))
	assert.Equal(t, 75.0, Round1(75.0))
	assert.Equal(t, 0.0, Round1(0.04))
	assert.Equal(t, 0.1, Round1(0.05))
}

func TestAttendanceRateEmpty(t *testing.T) {
	b := AttendanceRate(nil)
	assert.Equal(t, 0, b.Total)
	assert.Equal(t, 0.0, b.Rate)
}

func TestAttendanceRateFromReports(t *testing.T) {
	samples := []AttendanceSample{
		{Type: "quran", Status: sessionModel.SessionCompleted, Attendance: attendancePtr(model.AttendanceAttended)},
		{Type: "quran", Status: sessionModel.SessionCompleted, Attendance: attendancePtr(model.AttendanceAttended)},
		{Type: "quran", Status: sessionModel.SessionAbsent, Attendance: attendancePtr(model.AttendanceAbsent)},
		{Type: "quran", Status: sessionModel.SessionCompleted, Attendance: attendancePtr(model.AttendanceLate)},
	}
	b := AttendanceRate(samples)
	assert.Equal(t, 4, b.Total)
	assert.Equal(t, 3, b.Attended) // late counts as attended
	assert.Equal(t, 1, b.Absent)
	assert.Equal(t, 75.0, b.Rate)
}

func TestAttendanceRateExcludesCancelled(t *testing.T) {
	samples := []AttendanceSample{
		{Type: "quran", Status: sessionModel.SessionCompleted, Attendance: attendancePtr(model.AttendanceAttended)},
		{Type: "quran", Status: sessionModel.SessionCancelled},
		{Type: "quran", Status: sessionModel.SessionCancelled},
	}
	b := AttendanceRate(samples)
	assert.Equal(t, 1, b.Total)
	assert.Equal(t, 100.0, b.Rate)
}

func TestAttendanceRateStatusFallback(t *testing.T) {
	// No report rows: completed counts as attended, absent as missed.
	samples := []AttendanceSample{
		{Type: "academic", Status: sessionModel.SessionCompleted},
		{Type: "academic", Status: sessionModel.SessionCompleted},
		{Type: "academic", Status: sessionModel.SessionAbsent},
	}
	b := AttendanceRate(samples)
	assert.Equal(t, 3, b.Total)
	assert.Equal(t, 2, b.Attended)
	assert.Equal(t, 66.7, b.Rate)
}

func TestAttendanceByType(t *testing.T) {
	samples := []AttendanceSample{
		{Type: "quran", Status: sessionModel.SessionCompleted},
		{Type: "quran", Status: sessionModel.SessionAbsent},
		{Type: "academic", Status: sessionModel.SessionCompleted},
	}
	byType := AttendanceByType(samples)
	assert.Len(t, byType, 2)
	assert.Equal(t, 50.0, byType["quran"].Rate)
	assert.Equal(t, 100.0, byType["academic"].Rate)
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0.0, CompletionPercentage(0, 0))
	assert.Equal(t, 0.0, CompletionPercentage(5, 0))
	assert.Equal(t, 50.0, CompletionPercentage(1, 2))
	assert.Equal(t, 33.3, CompletionPercentage(1, 3))
}

func TestPassRate(t *testing.T) {
	assert.Equal(t, 0.0, PassRate(nil, nil))

	// Default threshold 60.
	assert.Equal(t, 50.0, PassRate([]float64{59.9, 60.0}, nil))

	custom := 80.0
	assert.Equal(t, 0.0, PassRate([]float64{79.0}, &custom))
	assert.Equal(t, 100.0, PassRate([]float64{80.0, 95.0}, &custom))
}

func TestAverageRating(t *testing.T) {
	assert.Nil(t, AverageRating(nil))
	assert.Nil(t, AverageRating([]*float64{nil, nil}))

	a, b := 4.0, 5.0
	avg := AverageRating([]*float64{&a, nil, &b})
	if assert.NotNil(t, avg) {
		assert.Equal(t, 4.5, *avg)
	}
}

func TestNewGracePeriodStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ends := now.Add(36 * time.Hour)
	s := NewGracePeriodStatus(true, &ends, now)
	assert.True(t, s.InGracePeriod)
	if assert.NotNil(t, s.DaysRemaining) {
		assert.Equal(t, 2, *s.DaysRemaining)
	}

	s = NewGracePeriodStatus(false, nil, now)
	assert.False(t, s.InGracePeriod)
	assert.Nil(t, s.DaysRemaining)
}
