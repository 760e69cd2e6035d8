package api

import (
	"testing"
	"time"
)

func TestDownloadStore_PutGet(t *testing.T) {
	t.Parallel()

	s := newDownloadStore()
	token := s.put("/tmp/export.xlsx", 3, time.Minute)
	if token == "" {
		t.Fatalf("empty token")
	}

	d, ok := s.get(token)
	if !ok || d.filePath != "/tmp/export.xlsx" || d.rowCount != 3 {
		t.Fatalf("unexpected download: %+v ok=%v", d, ok)
	}

	if _, ok := s.get("unknown"); ok {
		t.Fatalf("unknown token must not resolve")
	}
}

func TestDownloadStore_Expiry(t *testing.T) {
	t.Parallel()

	s := newDownloadStore()
	token := s.put("/tmp/export.xlsx", 1, -time.Second)
	if _, ok := s.get(token); ok {
		t.Fatalf("expired token must not resolve")
	}
}
