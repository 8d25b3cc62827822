package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademiku_backend/internals/constants"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
	"akademiku_backend/internals/features/sessions/model"
	helper "akademiku_backend/internals/helpers"
)

type fakeAdapter struct {
	typ    string
	events []adapter.SessionEvent
	err    error
	calls  atomic.Int64

	mu       sync.Mutex
	lastOpts adapter.FetchOptions
}

func (f *fakeAdapter) Type() string { return f.typ }

func (f *fakeAdapter) FetchByKeys(ctx context.Context, academyID uuid.UUID, keys identity.KeySet, opts adapter.FetchOptions) ([]adapter.SessionEvent, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastOpts = opts
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeAdapter) snapshotOpts() adapter.FetchOptions {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastOpts
}

func eventAt(typ string, at time.Time) adapter.SessionEvent {
	return adapter.SessionEvent{
		ID:          uuid.New(),
		Type:        typ,
		StudentKey:  uuid.New(),
		Title:       typ,
		ScheduledAt: at,
		Status:      model.SessionScheduled,
	}
}

func keySetOf(n int) identity.KeySet {
	ks := identity.KeySet{}
	for i := 0; i < n; i++ {
		ks.User = append(ks.User, uuid.New())
		ks.Profile = append(ks.Profile, uuid.New())
	}
	return ks
}

func TestGetForStudentsOneCallPerAdapter(t *testing.T) {
	quran := &fakeAdapter{typ: constants.TypeQuran}
	academic := &fakeAdapter{typ: constants.TypeAcademic}
	interactive := &fakeAdapter{typ: constants.TypeInteractive}
	svc := NewUnifiedWithAdapters([]adapter.SourceAdapter{quran, academic, interactive}, nil)

	// Five children must still cost exactly one call per source.
	_, err := svc.GetForStudents(context.Background(), uuid.New(), keySetOf(5), adapter.FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), quran.calls.Load())
	assert.Equal(t, int64(1), academic.calls.Load())
	assert.Equal(t, int64(1), interactive.calls.Load())
}

func TestGetForStudentsEmptyKeysSkipsAdapters(t *testing.T) {
	quran := &fakeAdapter{typ: constants.TypeQuran}
	svc := NewUnifiedWithAdapters([]adapter.SourceAdapter{quran}, nil)

	events, err := svc.GetForStudents(context.Background(), uuid.New(), identity.KeySet{}, adapter.FetchOptions{})
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, int64(0), quran.calls.Load())
}

func TestGetForStudentsMergeSorted(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	quran := &fakeAdapter{typ: constants.TypeQuran, events: []adapter.SessionEvent{
		eventAt(constants.TypeQuran, base.Add(2*time.Hour)),
		eventAt(constants.TypeQuran, base),
	}}
	academic := &fakeAdapter{typ: constants.TypeAcademic, events: []adapter.SessionEvent{
		eventAt(constants.TypeAcademic, base.Add(time.Hour)),
	}}
	svc := NewUnifiedWithAdapters([]adapter.SourceAdapter{quran, academic}, nil)

	events, err := svc.GetForStudents(context.Background(), uuid.New(), keySetOf(1), adapter.FetchOptions{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.True(t, events[0].ScheduledAt.Before(events[1].ScheduledAt))
	assert.True(t, events[1].ScheduledAt.Before(events[2].ScheduledAt))
}

func TestGetForStudentsStableTieOrder(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	quran := &fakeAdapter{typ: constants.TypeQuran, events: []adapter.SessionEvent{eventAt(constants.TypeQuran, at)}}
	academic := &fakeAdapter{typ: constants.TypeAcademic, events: []adapter.SessionEvent{eventAt(constants.TypeAcademic, at)}}
	interactive := &fakeAdapter{typ: constants.TypeInteractive, events: []adapter.SessionEvent{eventAt(constants.TypeInteractive, at)}}
	svc := NewUnifiedWithAdapters([]adapter.SourceAdapter{quran, academic, interactive}, nil)

	// Equal timestamps keep the adapter registration order.
	for i := 0; i < 10; i++ {
		events, err := svc.GetForStudents(context.Background(), uuid.New(), keySetOf(1), adapter.FetchOptions{})
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, constants.TypeQuran, events[0].Type)
		assert.Equal(t, constants.TypeAcademic, events[1].Type)
		assert.Equal(t, constants.TypeInteractive, events[2].Type)
	}
}

func TestGetForStudentsFailsWhole(t *testing.T) {
	boom := errors.New("adapter down")
	quran := &fakeAdapter{typ: constants.TypeQuran, events: []adapter.SessionEvent{
		eventAt(constants.TypeQuran, time.Now()),
	}}
	academic := &fakeAdapter{typ: constants.TypeAcademic, err: boom}
	svc := NewUnifiedWithAdapters([]adapter.SourceAdapter{quran, academic}, nil)

	events, err := svc.GetForStudents(context.Background(), uuid.New(), keySetOf(1), adapter.FetchOptions{})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, events)
}

func TestGetForStudentsLimitAfterMerge(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	quran := &fakeAdapter{typ: constants.TypeQuran, events: []adapter.SessionEvent{
		eventAt(constants.TypeQuran, base.Add(3*time.Hour)),
	}}
	academic := &fakeAdapter{typ: constants.TypeAcademic, events: []adapter.SessionEvent{
		eventAt(constants.TypeAcademic, base),
		eventAt(constants.TypeAcademic, base.Add(time.Hour)),
	}}
	svc := NewUnifiedWithAdapters([]adapter.SourceAdapter{quran, academic}, nil)

	events, err := svc.GetForStudents(context.Background(), uuid.New(), keySetOf(1), adapter.FetchOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// The limit applies to the merged order, not per adapter.
	assert.Equal(t, constants.TypeAcademic, events[0].Type)
	assert.Equal(t, constants.TypeAcademic, events[1].Type)
}

func TestGetForStudentsInvalidRange(t *testing.T) {
	quran := &fakeAdapter{typ: constants.TypeQuran}
	svc := NewUnifiedWithAdapters([]adapter.SourceAdapter{quran}, nil)

	r := helper.DateRange{
		From: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := svc.GetForStudents(context.Background(), uuid.New(), keySetOf(1), adapter.FetchOptions{Range: &r})
	require.Error(t, err)

	var apiErr *helper.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, helper.CodeInvalidDate, apiErr.Code)
	assert.Equal(t, int64(0), quran.calls.Load())
}

// Requests seconds apart must reuse the same cache entry, so the upcoming
// window may not carry second-level precision into the key.
func TestGetUpcomingSharesCacheKeyAcrossSeconds(t *testing.T) {
	fa := &fakeAdapter{typ: constants.TypeQuran}
	svc := NewUnifiedWithAdapters([]adapter.SourceAdapter{fa}, nil)
	keys := keySetOf(1)
	academy := uuid.New()
	base := time.Date(2026, 3, 1, 9, 30, 17, 0, time.UTC)

	svc.now = func() time.Time { return base }
	_, err := svc.GetUpcoming(context.Background(), academy, keys, 7, 0)
	require.NoError(t, err)
	first := fa.snapshotOpts()

	svc.now = func() time.Time { return base.Add(23 * time.Second) }
	_, err = svc.GetUpcoming(context.Background(), academy, keys, 7, 0)
	require.NoError(t, err)
	second := fa.snapshotOpts()

	require.NotNil(t, first.Range)
	require.NotNil(t, second.Range)
	assert.Equal(t, 0, first.Range.From.Second())
	assert.Equal(t, *first.Range, *second.Range)

	var cache *SessionCache
	assert.Equal(t, cache.Key(academy, keys, first), cache.Key(academy, keys, second))
}

func TestCountByStatus(t *testing.T) {
	now := time.Now()
	events := []adapter.SessionEvent{
		{Type: constants.TypeQuran, Status: model.SessionCompleted, ScheduledAt: now},
		{Type: constants.TypeQuran, Status: model.SessionScheduled, ScheduledAt: now},
		{Type: constants.TypeAcademic, Status: model.SessionCompleted, ScheduledAt: now},
	}
	counts := CountByStatus(events)
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.ByStatus[model.SessionCompleted])
	assert.Equal(t, 1, counts.ByStatus[model.SessionScheduled])
	assert.Equal(t, 2, counts.ByType[constants.TypeQuran])
	assert.Equal(t, 1, counts.ByType[constants.TypeAcademic])
}
