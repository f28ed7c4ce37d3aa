package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

var _ repository.SessionStore = (*RedisStore)(nil)

// RedisStore sesiones en Redis con expiración igual a la del JWT.
// Cada usuario tiene un set con sus ids de sesión.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore ttl <= 0 deja las claves sin expiración.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// NewRedisClient crea y valida la conexión a Redis.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func sessionKey(id string) string { return "styllo:session:" + id }

func userKey(username string) string {
	return "styllo:user_sessions:" + strings.ToLower(username)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var s entity.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Put(ctx context.Context, s *entity.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(s.ID), raw, r.ttl)
	pipe.SAdd(ctx, userKey(s.Username), s.ID)
	if r.ttl > 0 {
		pipe.Expire(ctx, userKey(s.Username), r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (r *RedisStore) Invalidate(ctx context.Context, id string) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	if s != nil {
		pipe.SRem(ctx, userKey(s.Username), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}

func (r *RedisStore) InvalidateUser(ctx context.Context, username, keepID string) error {
	ids, err := r.rdb.SMembers(ctx, userKey(username)).Result()
	if err != nil {
		return fmt.Errorf("list user sessions: %w", err)
	}
	pipe := r.rdb.TxPipeline()
	for _, id := range ids {
		if id == keepID {
			continue
		}
		pipe.Del(ctx, sessionKey(id))
		pipe.SRem(ctx, userKey(username), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidate user sessions: %w", err)
	}
	return nil
}
