package auth

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/skysearch/internal/models"
)

// Store is the key/value persistence behind the credential service. This is
// a toy persistence layer, not a security system: passwords are not stored
// at all and sessions never expire on their own.
type Store interface {
	GetUser(ctx context.Context, email string) (*models.User, bool, error)
	SaveUser(ctx context.Context, user models.User) error
	GetSession(ctx context.Context, token string) (*models.User, bool, error)
	SaveSession(ctx context.Context, token string, user models.User) error
	DeleteSession(ctx context.Context, token string) error
	Close() error
}

const (
	userKeyPrefix    = "user:"
	sessionKeyPrefix = "session:"
)

type RedisStore struct {
	client *redis.Client
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
	}
}

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) GetUser(ctx context.Context, email string) (*models.User, bool, error) {
	return s.get(ctx, userKeyPrefix+email)
}

func (s *RedisStore) SaveUser(ctx context.Context, user models.User) error {
	return s.set(ctx, userKeyPrefix+user.Email, user)
}

func (s *RedisStore) GetSession(ctx context.Context, token string) (*models.User, bool, error) {
	return s.get(ctx, sessionKeyPrefix+token)
}

func (s *RedisStore) SaveSession(ctx context.Context, token string, user models.User) error {
	return s.set(ctx, sessionKeyPrefix+token, user)
}

func (s *RedisStore) DeleteSession(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) get(ctx context.Context, key string) (*models.User, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (s *RedisStore) set(ctx context.Context, key string, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// MemoryStore is the in-process store used when redis is disabled and in
// tests.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]models.User
	sessions map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		sessions: make(map[string]models.User),
	}
}

func (s *MemoryStore) GetUser(ctx context.Context, email string) (*models.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	if !ok {
		return nil, false, nil
	}
	return &user, true, nil
}

func (s *MemoryStore) SaveUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
	return nil
}

func (s *MemoryStore) GetSession(ctx context.Context, token string) (*models.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[token]
	if !ok {
		return nil, false, nil
	}
	return &user, true, nil
}

func (s *MemoryStore) SaveSession(ctx context.Context, token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = user
	return nil
}

func (s *MemoryStore) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
