package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
	"akademiku_backend/internals/features/sessions/model"
	helper "akademiku_backend/internals/helpers"
)

// UnifiedSessionService merges the three session sources behind one call.
// The invariant it protects: one adapter call per source per request, no
// matter how many children the parent has.
type UnifiedSessionService struct {
	adapters []adapter.SourceAdapter
	cache    *SessionCache
	now      func() time.Time
}

func NewUnifiedSessionService(db *gorm.DB, rdb *redis.Client) *UnifiedSessionService {
	return &UnifiedSessionService{
		adapters: []adapter.SourceAdapter{
			adapter.QuranAdapter{DB: db},
			adapter.AcademicAdapter{DB: db},
			adapter.InteractiveAdapter{DB: db},
		},
		cache: NewSessionCache(rdb),
		now:   time.Now,
	}
}

// NewUnifiedWithAdapters wires explicit sources; tests use it with fakes.
func NewUnifiedWithAdapters(adapters []adapter.SourceAdapter, cache *SessionCache) *UnifiedSessionService {
	return &UnifiedSessionService{adapters: adapters, cache: cache, now: time.Now}
}

// GetForStudents fans out to every source concurrently and merges the
// results into one list sorted by scheduled time. Any source failing fails
// the whole call; a partial merged list would silently hide sessions.
func (s *UnifiedSessionService) GetForStudents(ctx context.Context, academyID uuid.UUID, keys identity.KeySet, opts adapter.FetchOptions) ([]adapter.SessionEvent, error) {
	if keys.Empty() {
		return []adapter.SessionEvent{}, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Now.IsZero() {
		opts.Now = s.now()
	}

	cacheKey := ""
	if s.cache != nil {
		cacheKey = s.cache.Key(academyID, keys, opts)
		if events, ok := s.cache.Get(ctx, cacheKey); ok {
			return events, nil
		}
	}

	events, err := s.fetchAll(ctx, academyID, keys, opts)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, events)
	}
	return events, nil
}

func (s *UnifiedSessionService) fetchAll(ctx context.Context, academyID uuid.UUID, keys identity.KeySet, opts adapter.FetchOptions) ([]adapter.SessionEvent, error) {
	var (
		mu     sync.Mutex
		merged = make([]adapter.SessionEvent, 0, 32)
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, a := range s.adapters {
		a := a
		g.Go(func() error {
			events, err := a.FetchByKeys(gctx, academyID, keys, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			merged = append(merged, events...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stable sort keeps the quran < academic < interactive adapter order
	// deterministic for equal timestamps.
	sort.SliceStable(merged, func(i, j int) bool {
		if opts.Descending {
			return merged[i].ScheduledAt.After(merged[j].ScheduledAt)
		}
		return merged[i].ScheduledAt.Before(merged[j].ScheduledAt)
	})
	if opts.Limit > 0 && len(merged) > opts.Limit {
		merged = merged[:opts.Limit]
	}
	return merged, nil
}

// GetToday always reads fresh. Parents watch this list around session
// start time, so a cached can_join flag would be visibly stale.
func (s *UnifiedSessionService) GetToday(ctx context.Context, academyID uuid.UUID, keys identity.KeySet) ([]adapter.SessionEvent, error) {
	if keys.Empty() {
		return []adapter.SessionEvent{}, nil
	}
	now := s.now()
	day := helper.DayRange(now)
	opts := adapter.FetchOptions{
		Range:           &day,
		ExcludeStatuses: []model.SessionStatus{model.SessionCancelled},
		Now:             now,
	}
	return s.fetchAll(ctx, academyID, keys, opts)
}

// GetUpcoming returns sessions still ahead of now, nearest first.
func (s *UnifiedSessionService) GetUpcoming(ctx context.Context, academyID uuid.UUID, keys identity.KeySet, days, limit int) ([]adapter.SessionEvent, error) {
	if keys.Empty() {
		return []adapter.SessionEvent{}, nil
	}
	if days <= 0 {
		days = 7
	}
	now := s.now()
	// Bounds snap to the minute so back-to-back requests share a cache
	// entry instead of minting a new key every second.
	from := now.Truncate(time.Minute)
	r := helper.DateRange{From: from, To: from.AddDate(0, 0, days)}
	opts := adapter.FetchOptions{
		Range:           &r,
		ExcludeStatuses: []model.SessionStatus{model.SessionCancelled, model.SessionCompleted, model.SessionAbsent},
		Limit:           limit,
		Now:             now,
	}
	return s.GetForStudents(ctx, academyID, keys, opts)
}

// GetRange serves history and calendar windows.
func (s *UnifiedSessionService) GetRange(ctx context.Context, academyID uuid.UUID, keys identity.KeySet, r helper.DateRange) ([]adapter.SessionEvent, error) {
	opts := adapter.FetchOptions{Range: &r, Now: s.now()}
	return s.GetForStudents(ctx, academyID, keys, opts)
}

// StatusCounts buckets a fetched window by status and type.
type StatusCounts struct {
	Total    int                         `json:"total"`
	ByStatus map[model.SessionStatus]int `json:"by_status"`
	ByType   map[string]int              `json:"by_type"`
}

func CountByStatus(events []adapter.SessionEvent) StatusCounts {
	counts := StatusCounts{
		ByStatus: make(map[model.SessionStatus]int),
		ByType:   make(map[string]int),
	}
	for _, ev := range events {
		counts.Total++
		counts.ByStatus[ev.Status]++
		counts.ByType[ev.Type]++
	}
	return counts
}
