package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type download struct {
	filePath  string
	rowCount  int
	expiresAt time.Time
}

// downloadStore hands out expiring one-shot tokens for export downloads.
// It is the only mutable state behind the API.
type downloadStore struct {
	mu    sync.Mutex
	items map[string]download
}

func newDownloadStore() *downloadStore {
	return &downloadStore{items: make(map[string]download)}
}

func (s *downloadStore) put(filePath string, rowCount int, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token := uuid.NewString()
	s.items[token] = download{
		filePath:  filePath,
		rowCount:  rowCount,
		expiresAt: time.Now().Add(ttl),
	}
	return token
}

func (s *downloadStore) get(token string) (download, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	d, ok := s.items[token]
	if !ok {
		return download{}, false
	}
	if time.Now().After(d.expiresAt) {
		delete(s.items, token)
		return download{}, false
	}
	return d, true
}

func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, d := range s.items {
		if now.After(d.expiresAt) {
			delete(s.items, k)
		}
	}
}
