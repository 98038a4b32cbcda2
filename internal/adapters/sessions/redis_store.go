package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"route-roster-service/internal/ports"
)

// RedisStore keeps composition sessions in Redis so any instance can serve
// the construction workflow.
//
// Each session holds one list per selection kind. The list representation
// carries the selection semantics directly: select is RPUSH (append,
// duplicates allowed), deselect is LREM 0 (remove every matching entry),
// and LRANGE preserves insertion order. Sessions expire after ttl of
// inactivity; an abandoned form never needs explicit cleanup.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return "compose:" + id
}

func selectionKey(id string, kind ports.SelectionKind) string {
	return "compose:" + id + ":" + string(kind)
}

func (r *RedisStore) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := r.rdb.Set(ctx, sessionKey(id), "1", r.ttl).Err(); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

func (r *RedisStore) exists(ctx context.Context, sessionID string) error {
	n, err := r.rdb.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("check session %q: %w", sessionID, err)
	}
	if n == 0 {
		return ports.ErrSessionNotFound
	}
	return nil
}

func (r *RedisStore) Toggle(ctx context.Context, sessionID string, kind ports.SelectionKind, id int, deselect bool) error {
	if err := r.exists(ctx, sessionID); err != nil {
		return err
	}

	key := selectionKey(sessionID, kind)
	val := strconv.Itoa(id)

	var err error
	if deselect {
		err = r.rdb.LRem(ctx, key, 0, val).Err()
	} else {
		err = r.rdb.RPush(ctx, key, val).Err()
	}
	if err != nil {
		return fmt.Errorf("toggle %s id=%d: %w", kind, id, err)
	}

	r.touch(ctx, sessionID)
	return nil
}

func (r *RedisStore) Selections(ctx context.Context, sessionID string, kind ports.SelectionKind) ([]int, error) {
	if err := r.exists(ctx, sessionID); err != nil {
		return nil, err
	}

	vals, err := r.rdb.LRange(ctx, selectionKey(sessionID, kind), 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read %s selections: %w", kind, err)
	}

	ids := make([]int, 0, len(vals))
	for _, v := range vals {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("read %s selections: bad entry %q: %w", kind, v, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := r.exists(ctx, sessionID); err != nil {
		return err
	}

	keys := []string{
		sessionKey(sessionID),
		selectionKey(sessionID, ports.SelectionDrivers),
		selectionKey(sessionID, ports.SelectionRecipients),
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear session %q: %w", sessionID, err)
	}
	return nil
}

// touch extends the session lifetime on activity.
func (r *RedisStore) touch(ctx context.Context, sessionID string) {
	r.rdb.Expire(ctx, sessionKey(sessionID), r.ttl)
	r.rdb.Expire(ctx, selectionKey(sessionID, ports.SelectionDrivers), r.ttl)
	r.rdb.Expire(ctx, selectionKey(sessionID, ports.SelectionRecipients), r.ttl)
}
