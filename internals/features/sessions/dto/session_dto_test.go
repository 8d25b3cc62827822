package dto

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademiku_backend/internals/constants"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
	"akademiku_backend/internals/features/sessions/model"
)

func jsonKeys(t *testing.T, v any) map[string]struct{} {
	t.Helper()
	raw, err := sonic.Marshal(v)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &decoded))
	keys := make(map[string]struct{}, len(decoded))
	for k := range decoded {
		keys[k] = struct{}{}
	}
	return keys
}

func sampleEvent(typ string) adapter.SessionEvent {
	return adapter.SessionEvent{
		ID:              uuid.New(),
		Type:            typ,
		StudentKey:      uuid.New(),
		Title:           "Sample",
		ScheduledAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          model.SessionScheduled,
	}
}

// Clients render the three session types from one component; a key that
// appears for one type and not another breaks that.
func TestSessionResponsesShareKeySet(t *testing.T) {
	circle := "Circle A"
	subject := "Mathematics"
	courseName := "Tajwid Basics"
	num := 4

	quran := sampleEvent(constants.TypeQuran)
	quran.CircleName = &circle

	academic := sampleEvent(constants.TypeAcademic)
	academic.Subject = &subject

	interactive := sampleEvent(constants.TypeInteractive)
	interactive.CourseName = &courseName
	interactive.SessionNumber = &num

	base := jsonKeys(t, NewSessionEventResponse(quran, nil))
	for _, ev := range []adapter.SessionEvent{academic, interactive} {
		assert.Equal(t, base, jsonKeys(t, NewSessionEventResponse(ev, nil)))
	}

	// Unused keys serialize as null, they never disappear.
	raw, err := sonic.Marshal(NewSessionEventResponse(academic, nil))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"circle_name":null`)
	assert.Contains(t, string(raw), `"course_name":null`)
}

func TestNewSessionEventResponsePure(t *testing.T) {
	ev := sampleEvent(constants.TypeQuran)
	first := NewSessionEventResponse(ev, nil)
	second := NewSessionEventResponse(ev, nil)
	assert.Equal(t, first, second)
	assert.Nil(t, first.Child)
}

func TestNewSessionEventResponsesAttributesChildren(t *testing.T) {
	userID := uuid.New()
	children := []identity.Child{
		{Identity: identity.StudentIdentity{StudentProfileID: uuid.New(), UserID: &userID}, DisplayName: "Aisyah"},
		{Identity: identity.StudentIdentity{StudentProfileID: uuid.New()}, DisplayName: "Bilal"},
	}
	index := identity.IndexChildren(children)

	userKeyed := sampleEvent(constants.TypeQuran)
	userKeyed.StudentKey = userID
	profileKeyed := sampleEvent(constants.TypeInteractive)
	profileKeyed.StudentKey = children[1].Identity.StudentProfileID
	orphan := sampleEvent(constants.TypeAcademic)

	out := NewSessionEventResponses([]adapter.SessionEvent{userKeyed, profileKeyed, orphan}, index)
	require.Len(t, out, 3)

	require.NotNil(t, out[0].Child)
	assert.Equal(t, "Aisyah", out[0].Child.Name)
	require.NotNil(t, out[1].Child)
	assert.Equal(t, "Bilal", out[1].Child.Name)
	assert.Nil(t, out[2].Child)
}

func TestQuranHomeworkBlockEmpty(t *testing.T) {
	assert.True(t, QuranHomeworkBlock{}.Empty())
	memo := "Al-Mulk 1-10"
	assert.False(t, QuranHomeworkBlock{Memorization: &memo}.Empty())
}
