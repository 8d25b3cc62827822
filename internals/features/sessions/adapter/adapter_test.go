package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"akademiku_backend/internals/features/sessions/model"
	helper "akademiku_backend/internals/helpers"
)

func TestCanJoinAt(t *testing.T) {
	scheduled := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status model.SessionStatus
		now    time.Time
		want   bool
	}{
		{"ongoing always joinable", model.SessionOngoing, scheduled.Add(-3 * time.Hour), true},
		{"opens 15 min before", model.SessionScheduled, scheduled.Add(-15 * time.Minute), true},
		{"closed 16 min before", model.SessionScheduled, scheduled.Add(-16 * time.Minute), false},
		{"open at start", model.SessionScheduled, scheduled, true},
		{"open 60 min after", model.SessionReady, scheduled.Add(60 * time.Minute), true},
		{"closed 61 min after", model.SessionScheduled, scheduled.Add(61 * time.Minute), false},
		{"completed never joinable", model.SessionCompleted, scheduled, false},
		{"cancelled never joinable", model.SessionCancelled, scheduled, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanJoinAt(tc.status, scheduled, tc.now))
		})
	}
}

func TestFetchOptionsValidate(t *testing.T) {
	assert.NoError(t, FetchOptions{}.Validate())

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bad := FetchOptions{Range: &helper.DateRange{From: from, To: from.AddDate(0, 0, -1)}}
	assert.Error(t, bad.Validate())

	open := FetchOptions{Range: &helper.DateRange{From: from}}
	assert.NoError(t, open.Validate())
}
