package controller

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademiku_backend/internals/constants"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/reports/model"
	"akademiku_backend/internals/features/sessions/adapter"
	sessionModel "akademiku_backend/internals/features/sessions/model"
	helper "akademiku_backend/internals/helpers"
)

func eventFor(key uuid.UUID, typ string, status sessionModel.SessionStatus, at time.Time) adapter.SessionEvent {
	return adapter.SessionEvent{
		ID:          uuid.New(),
		Type:        typ,
		StudentKey:  key,
		Title:       typ,
		ScheduledAt: at,
		Status:      status,
	}
}

// One merged fetch serves every child; partitioning attributes each event
// through whichever key space its subsystem uses.
func TestGroupEventsByChild(t *testing.T) {
	userID := uuid.New()
	children := []identity.Child{
		{Identity: identity.StudentIdentity{StudentProfileID: uuid.New(), UserID: &userID}, DisplayName: "Aisyah"},
		{Identity: identity.StudentIdentity{StudentProfileID: uuid.New()}, DisplayName: "Bilal"},
	}
	index := identity.IndexChildren(children)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	events := []adapter.SessionEvent{
		eventFor(userID, constants.TypeQuran, sessionModel.SessionCompleted, at),
		eventFor(userID, constants.TypeAcademic, sessionModel.SessionScheduled, at.Add(time.Hour)),
		eventFor(children[1].Identity.StudentProfileID, constants.TypeInteractive, sessionModel.SessionCompleted, at),
		eventFor(uuid.New(), constants.TypeQuran, sessionModel.SessionCompleted, at), // not a linked child
	}

	byChild := groupEventsByChild(events, index)
	assert.Len(t, byChild[children[0].Identity.StudentProfileID], 2)
	assert.Len(t, byChild[children[1].Identity.StudentProfileID], 1)
	assert.Len(t, byChild, 2)
}

func TestBuildChildProgress(t *testing.T) {
	key := uuid.New()
	ch := identity.Child{
		Identity:    identity.StudentIdentity{StudentProfileID: uuid.New(), UserID: &key},
		DisplayName: "Aisyah",
	}
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	window := helper.DateRange{From: at.AddDate(0, 0, -30), To: at}

	events := []adapter.SessionEvent{
		eventFor(key, constants.TypeQuran, sessionModel.SessionCompleted, at.AddDate(0, 0, -3)),
		eventFor(key, constants.TypeQuran, sessionModel.SessionCompleted, at.AddDate(0, 0, -2)),
		eventFor(key, constants.TypeAcademic, sessionModel.SessionCancelled, at.AddDate(0, 0, -1)),
		eventFor(key, constants.TypeAcademic, sessionModel.SessionScheduled, at.AddDate(0, 0, 1)),
	}
	rating := 4.0
	reports := map[uuid.UUID]model.StudentSessionReportModel{
		events[0].ID: {
			StudentSessionReportSessionID:        events[0].ID,
			StudentSessionReportAttendanceStatus: model.AttendanceAttended,
			StudentSessionReportRating:           &rating,
		},
	}

	resp := buildChildProgress(ch, events, reports, window)

	require.NotNil(t, resp.Child)
	assert.Equal(t, ch.Identity.StudentProfileID, resp.Child.ID)
	assert.Equal(t, 4, resp.Sessions.Total)
	assert.Equal(t, 2, resp.Sessions.Completed)
	assert.Equal(t, 1, resp.Sessions.Cancelled)
	assert.Equal(t, 1, resp.Sessions.Upcoming)
	assert.Equal(t, 2, resp.Sessions.ByType[constants.TypeQuran])
	// Cancelled rows are out of the countable denominator: 2 completed of 3.
	assert.InDelta(t, 66.7, resp.Completion, 0.001)
	require.NotNil(t, resp.AverageRating)
	assert.Equal(t, 4.0, *resp.AverageRating)
}

func TestBuildChildProgressNoSessions(t *testing.T) {
	ch := identity.Child{Identity: identity.StudentIdentity{StudentProfileID: uuid.New()}, DisplayName: "Bilal"}
	window := helper.DateRange{From: time.Now().AddDate(0, 0, -30), To: time.Now()}

	resp := buildChildProgress(ch, nil, map[uuid.UUID]model.StudentSessionReportModel{}, window)

	assert.Equal(t, 0, resp.Sessions.Total)
	assert.Equal(t, 0.0, resp.Completion)
	assert.Nil(t, resp.AverageRating)
	assert.Equal(t, 0.0, resp.Attendance.Rate)
}
