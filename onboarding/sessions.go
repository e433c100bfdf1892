package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps wizards between requests. Get returns a copy; callers
// mutate it and Save it back. A session expires ttl after Create; Save does
// not extend it, so it never outlives the wizard token issued at start.
//
// ClaimFinalize is the atomic single-use guard: exactly one caller per
// session gets nil, every other caller gets ErrAlreadyFinalized.
// ReleaseFinalize undoes a claim whose record could not be stored.
type SessionStore interface {
	Create(ctx context.Context, w *Wizard) error
	Get(ctx context.Context, id string) (*Wizard, error)
	Save(ctx context.Context, w *Wizard) error
	Delete(ctx context.Context, id string) error
	ClaimFinalize(ctx context.Context, id string) error
	ReleaseFinalize(ctx context.Context, id string) error
}

type memoryEntry struct {
	wizard    *Wizard
	expiresAt time.Time
	claimed   bool
}

type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemorySessionStore) Create(_ context.Context, w *Wizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live(w.ID); ok {
		return fmt.Errorf("session %s already exists", w.ID)
	}
	s.entries[w.ID] = memoryEntry{wizard: w.Clone(), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e.wizard.Clone(), nil
}

func (s *MemorySessionStore) Save(_ context.Context, w *Wizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(w.ID)
	if !ok {
		return ErrSessionNotFound
	}
	e.wizard = w.Clone()
	s.entries[w.ID] = e
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemorySessionStore) ClaimFinalize(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(id)
	if !ok {
		return ErrSessionNotFound
	}
	if e.claimed || e.wizard.Finalized {
		return ErrAlreadyFinalized
	}
	e.claimed = true
	s.entries[id] = e
	return nil
}

func (s *MemorySessionStore) ReleaseFinalize(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.live(id); ok {
		e.claimed = false
		s.entries[id] = e
	}
	return nil
}

// live must be called with mu held. Expired entries are dropped on access.
func (s *MemorySessionStore) live(id string) (memoryEntry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if s.ttl > 0 && !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return memoryEntry{}, false
	}
	return e, true
}

// RedisSessionStore shares wizard sessions across service instances.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "onboarding:session:" + id
}

func finalizedKey(id string) string {
	return "onboarding:finalized:" + id
}

func (s *RedisSessionStore) Create(ctx context.Context, w *Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ok, err := s.client.SetNX(ctx, sessionKey(w.ID), b, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s already exists", w.ID)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Wizard, error) {
	b, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var w Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &w, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, w *Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	err = s.client.SetArgs(ctx, sessionKey(w.ID), b, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if errors.Is(err, redis.Nil) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id), finalizedKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) ClaimFinalize(ctx context.Context, id string) error {
	ok, err := s.client.SetNX(ctx, finalizedKey(id), 1, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("claim finalize: %w", err)
	}
	if !ok {
		return ErrAlreadyFinalized
	}
	return nil
}

func (s *RedisSessionStore) ReleaseFinalize(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, finalizedKey(id)).Err(); err != nil {
		return fmt.Errorf("release finalize: %w", err)
	}
	return nil
}
