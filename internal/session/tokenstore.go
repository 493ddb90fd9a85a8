package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// TokenStore persists the bearer token across process restarts.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (m *MemoryTokenStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTokenStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryTokenStore) Clear(context.Context) error {
	return m.Save(context.Background(), "")
}

// RedisTokenStore keys the token per terminal, so a restarted kiosk picks its
// session back up.
type RedisTokenStore struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration
}

func NewRedisTokenStore(client *redis.Client, key string, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{Client: client, Key: key, TTL: ttl}
}

func (r *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := r.Client.Get(ctx, r.Key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return token, err
}

func (r *RedisTokenStore) Save(ctx context.Context, token string) error {
	return r.Client.Set(ctx, r.Key, token, r.TTL).Err()
}

func (r *RedisTokenStore) Clear(ctx context.Context) error {
	return r.Client.Del(ctx, r.Key).Err()
}

// Source adapts a TokenStore into the api client's TokenSource, discarding
// tokens that are already expired rather than sending them.
type Source struct {
	Store TokenStore
}

func (s Source) Token(ctx context.Context) (string, error) {
	token, err := s.Store.Load(ctx)
	if err != nil || token == "" {
		return "", err
	}
	if tokenExpired(token, time.Now()) {
		_ = s.Store.Clear(ctx)
		return "", nil
	}
	return token, nil
}

// tokenExpired inspects the exp claim without verifying the signature; the
// backend is the verifier, this just avoids sending a token known to be dead.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
