package services

import (
	"sync"
	"time"
)

// CodeStore holds short-lived verification codes keyed by email.
// The in-memory implementation is process-local; swap it for a shared
// cache when running more than one instance.
type CodeStore interface {
	Put(email, code string, ttl time.Duration)
	Get(email string) (string, error)
	Remove(email string)
}

type codeEntry struct {
	code      string
	expiresAt time.Time
}

type MemoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]codeEntry
}

func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{codes: make(map[string]codeEntry)}
}

func (s *MemoryCodeStore) Put(email, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Evict anything already expired while we hold the lock.
	now := time.Now()
	for k, e := range s.codes {
		if now.After(e.expiresAt) {
			delete(s.codes, k)
		}
	}

	s.codes[email] = codeEntry{code: code, expiresAt: now.Add(ttl)}
}

func (s *MemoryCodeStore) Get(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[email]
	if !ok {
		return "", ErrInvalidCode
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.codes, email)
		return "", ErrExpiredCode
	}
	return entry.code, nil
}

func (s *MemoryCodeStore) Remove(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
}
