package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingCacheHooks struct {
	mu     sync.Mutex
	hits   int
	misses int
	sets   int
}

func (r *recordingCacheHooks) OnCacheHit(ctx context.Context, key string) {
	r.mu.Lock()
	r.hits++
	r.mu.Unlock()
}

func (r *recordingCacheHooks) OnCacheMiss(ctx context.Context, key string) {
	r.mu.Lock()
	r.misses++
	r.mu.Unlock()
}

func (r *recordingCacheHooks) OnCacheSet(ctx context.Context, key string) {
	r.mu.Lock()
	r.sets++
	r.mu.Unlock()
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "npm:lodash@4.17.21")
	Cache().OnCacheSet(ctx, "npm:lodash@4.17.21")
	Cache().OnCacheHit(ctx, "npm:lodash@4.17.21")

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 1 {
		t.Errorf("hits/misses/sets = %d/%d/%d, want 1/1/1", rec.hits, rec.misses, rec.sets)
	}
}

func TestSetNilKeepsDefaults(t *testing.T) {
	defer Reset()

	SetCacheHooks(nil)
	SetResolveHooks(nil)
	SetHTTPHooks(nil)

	// No panic means the no-op defaults are still in place.
	ctx := context.Background()
	Cache().OnCacheHit(ctx, "k")
	Resolve().OnResolveStart(ctx, "k")
	Resolve().OnResolveComplete(ctx, "k", "2.0 kB", time.Millisecond)
	HTTP().OnRequest(ctx, "GET", "registry.npmjs.org", "/lodash")
}

func TestReset(t *testing.T) {
	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)
	Reset()

	Cache().OnCacheHit(context.Background(), "k")
	if rec.hits != 0 {
		t.Error("Reset() did not restore no-op cache hooks")
	}
}
