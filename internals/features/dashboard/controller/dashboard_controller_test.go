package controller

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademiku_backend/internals/constants"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
	sessionDTO "akademiku_backend/internals/features/sessions/dto"
	sessionModel "akademiku_backend/internals/features/sessions/model"
)

func eventFor(key uuid.UUID, status sessionModel.SessionStatus, at time.Time) adapter.SessionEvent {
	return adapter.SessionEvent{
		ID:          uuid.New(),
		Type:        constants.TypeQuran,
		StudentKey:  key,
		Title:       "Session",
		ScheduledAt: at,
		Status:      status,
	}
}

// Two children, one with three sessions today and one with none: the split
// keeps all three in today's list and attribution leaves the second child
// with nothing.
func TestSplitSessionsTwoChildren(t *testing.T) {
	userID := uuid.New()
	children := []identity.Child{
		{Identity: identity.StudentIdentity{StudentProfileID: uuid.New(), UserID: &userID}, DisplayName: "Aisyah"},
		{Identity: identity.StudentIdentity{StudentProfileID: uuid.New()}, DisplayName: "Bilal"},
	}
	index := identity.IndexChildren(children)

	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	endOfDay := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)
	events := []adapter.SessionEvent{
		eventFor(userID, sessionModel.SessionCompleted, now.Add(-2*time.Hour)),
		eventFor(userID, sessionModel.SessionScheduled, now.Add(2*time.Hour)),
		eventFor(userID, sessionModel.SessionScheduled, now.Add(5*time.Hour)),
		eventFor(userID, sessionModel.SessionScheduled, now.AddDate(0, 0, 3)),
	}

	today, upcoming := splitSessions(events, now, endOfDay, upcomingPreviewLimit)
	require.Len(t, today, 3)
	require.Len(t, upcoming, 3)

	for _, resp := range sessionDTO.NewSessionEventResponses(today, index) {
		require.NotNil(t, resp.Child)
		assert.Equal(t, "Aisyah", resp.Child.Name)
	}
}

func TestSplitSessionsPreviewRules(t *testing.T) {
	key := uuid.New()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	endOfDay := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)

	events := []adapter.SessionEvent{
		eventFor(key, sessionModel.SessionCompleted, now.Add(-time.Hour)),  // past, terminal
		eventFor(key, sessionModel.SessionCompleted, now.Add(time.Hour)),   // terminal: no preview
		eventFor(key, sessionModel.SessionScheduled, now.Add(2*time.Hour)), // preview
		eventFor(key, sessionModel.SessionScheduled, now.AddDate(0, 0, 1)), // preview
		eventFor(key, sessionModel.SessionScheduled, now.AddDate(0, 0, 2)), // preview
		eventFor(key, sessionModel.SessionScheduled, now.AddDate(0, 0, 3)), // cut by limit
	}

	today, upcoming := splitSessions(events, now, endOfDay, 3)
	assert.Len(t, today, 3)
	require.Len(t, upcoming, 3)
	for _, ev := range upcoming {
		assert.True(t, ev.ScheduledAt.After(now))
		assert.False(t, ev.Status.IsTerminal())
	}
}

func TestSplitSessionsEmpty(t *testing.T) {
	now := time.Now()
	today, upcoming := splitSessions(nil, now, now.Add(12*time.Hour), 5)
	assert.Empty(t, today)
	assert.Empty(t, upcoming)
	assert.NotNil(t, today)
	assert.NotNil(t, upcoming)
}
