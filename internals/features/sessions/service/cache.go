package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/sessions/adapter"
)

const sessionCacheTTL = 5 * time.Minute

// SessionCache is a read-through cache for merged session lists. A nil
// receiver is valid and disables caching, so callers never branch on it.
type SessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) *SessionCache {
	if client == nil {
		return nil
	}
	return &SessionCache{client: client}
}

// Key folds the tenant, both key families and the filter set into one
// digest. Keys are sorted first so child order never splits cache entries.
func (c *SessionCache) Key(academyID uuid.UUID, keys identity.KeySet, opts adapter.FetchOptions) string {
	h := sha256.New()
	fmt.Fprintf(h, "academy=%s;", academyID)
	for _, id := range sortedIDs(keys.User) {
		fmt.Fprintf(h, "u=%s;", id)
	}
	for _, id := range sortedIDs(keys.Profile) {
		fmt.Fprintf(h, "p=%s;", id)
	}
	if opts.Range != nil {
		fmt.Fprintf(h, "from=%d;to=%d;", opts.Range.From.Unix(), opts.Range.To.Unix())
	}
	for _, s := range opts.Statuses {
		fmt.Fprintf(h, "s=%s;", s)
	}
	for _, s := range opts.ExcludeStatuses {
		fmt.Fprintf(h, "x=%s;", s)
	}
	fmt.Fprintf(h, "limit=%d;desc=%t;", opts.Limit, opts.Descending)
	return "sessions:unified:" + hex.EncodeToString(h.Sum(nil))
}

func (c *SessionCache) Get(ctx context.Context, key string) ([]adapter.SessionEvent, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var events []adapter.SessionEvent
	if err := sonic.Unmarshal(raw, &events); err != nil {
		return nil, false
	}
	return events, true
}

func (c *SessionCache) Set(ctx context.Context, key string, events []adapter.SessionEvent) {
	if c == nil {
		return
	}
	raw, err := sonic.Marshal(events)
	if err != nil {
		return
	}
	// Cache misses are cheap, cache errors are not worth surfacing.
	_ = c.client.Set(ctx, key, raw, sessionCacheTTL).Err()
}

func sortedIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
