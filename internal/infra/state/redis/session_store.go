package redisstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/repository"
)

const defaultKeyPrefix = "carbon:"

// RedisSessionRepository stores sessions as hashes and flashes as lists,
// both expiring with the session.
type RedisSessionRepository struct {
	client    *redis.Client
	keyPrefix string
}

func NewRedisSessionRepository(client *redis.Client, keyPrefix string) *RedisSessionRepository {
	if client == nil {
		panic("redis client cannot be nil for RedisSessionRepository")
	}
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisSessionRepository{client: client, keyPrefix: keyPrefix}
}

func (r *RedisSessionRepository) sessionKey(id string) string {
	return fmt.Sprintf("%ssession:%s", r.keyPrefix, id)
}

func (r *RedisSessionRepository) flashKey(id string) string {
	return fmt.Sprintf("%ssession:%s:flash", r.keyPrefix, id)
}

func (r *RedisSessionRepository) Create(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("redis: session id is required")
	}
	key := r.sessionKey(session.ID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, sessionFields(session))
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: failed to store session on key %s: %w", key, err)
	}
	return nil
}

func (r *RedisSessionRepository) Find(ctx context.Context, id string) (*domain.Session, error) {
	key := r.sessionKey(id)
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis: failed to load session from %s: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, repository.ErrSessionNotFound
	}
	session, err := sessionFromFields(id, fields)
	if err != nil {
		return nil, fmt.Errorf("redis: corrupt session on key %s: %w", key, err)
	}
	return session, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.sessionKey(id), r.flashKey(id)).Err(); err != nil {
		return fmt.Errorf("redis: failed to delete session %s: %w", id, err)
	}
	return nil
}

// PushFlash queues a message. The list lives only as long as its session.
func (r *RedisSessionRepository) PushFlash(ctx context.Context, id string, flash domain.Flash) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("redis: failed to marshal flash: %w", err)
	}
	sessionKey := r.sessionKey(id)
	ttl, err := r.client.TTL(ctx, sessionKey).Result()
	if err != nil {
		return fmt.Errorf("redis: failed to read ttl of %s: %w", sessionKey, err)
	}
	if ttl <= 0 {
		return repository.ErrSessionNotFound
	}

	key := r.flashKey(id)
	pipe := r.client.Pipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis: failed to push flash on key %s: %w", key, err)
	}
	return nil
}

func (r *RedisSessionRepository) PopFlashes(ctx context.Context, id string) ([]domain.Flash, error) {
	key := r.flashKey(id)
	var lrange *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis: failed to pop flashes from %s: %w", key, err)
	}
	return decodeFlashes(lrange.Val()), nil
}

func sessionFields(s *domain.Session) map[string]interface{} {
	return map[string]interface{}{
		"user_id":    strconv.FormatUint(uint64(s.UserID), 10),
		"username":   s.Username,
		"expires_at": strconv.FormatInt(s.ExpiresAt.Unix(), 10),
	}
}

func sessionFromFields(id string, fields map[string]string) (*domain.Session, error) {
	userID, err := strconv.ParseUint(fields["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse user_id: %w", err)
	}
	expires, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse expires_at: %w", err)
	}
	return &domain.Session{
		ID:        id,
		UserID:    uint(userID),
		Username:  fields["username"],
		ExpiresAt: time.Unix(expires, 0),
	}, nil
}

func decodeFlashes(raw []string) []domain.Flash {
	flashes := make([]domain.Flash, 0, len(raw))
	for _, item := range raw {
		var f domain.Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			logrus.Warnf("redis: dropping undecodable flash %q: %v", item, err)
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes
}
