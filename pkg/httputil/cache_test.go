package httputil

import (
	"errors"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	tests := []struct {
		name string
		key  string
	}{
		{"plain name", "npm:lodash"},
		{"pinned version", "npm:lodash@4.17.21"},
		{"scoped name", "npm:@types/node@20.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Set(tt.key, int64(1434895)); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}

			var size int64
			ok, err := c.Get(tt.key, &size)
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if !ok {
				t.Fatal("Get() returned false for existing key")
			}
			if size != 1434895 {
				t.Errorf("Get() = %d, want 1434895", size)
			}
		})
	}
}

func TestCache_Miss(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	var size int64
	ok, err := c.Get("npm:missing", &size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() returned true for missing key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 10*time.Millisecond)

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var res string
	ok, err := c.Get("key", &res)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}

	time.Sleep(20 * time.Millisecond)

	ok, err = c.Get("key", &res)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("got error %v, want ErrExpired", err)
	}
	if ok {
		t.Error("Get() returned true for expired key")
	}
}

func TestCache_NoExpiry(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 0)

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	var res string
	ok, err := c.Get("key", &res)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}
}

func TestCache_Namespace(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	npm := c.Namespace("npm:")

	if err := npm.Set("lodash", "1.4 MB"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var viaParent string
	ok, err := c.Get("npm:lodash", &viaParent)
	if err != nil || !ok {
		t.Fatalf("parent Get() = %v, %v; want true, nil", ok, err)
	}
	if viaParent != "1.4 MB" {
		t.Errorf("parent Get() = %q, want %q", viaParent, "1.4 MB")
	}

	var unprefixed string
	if ok, _ := c.Get("lodash", &unprefixed); ok {
		t.Error("unprefixed key should not exist in parent namespace")
	}
}

func TestCache_Retry(t *testing.T) {
	// Transient failures retry; definitive ones do not.
	attempts := 0
	err := Retry(t.Context(), 3, time.Millisecond, func() error {
		attempts++
		if attempts < 3 {
			return &RetryableError{Err: errors.New("boom")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() = %v, want nil", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}

	attempts = 0
	permanent := errors.New("not found")
	err = Retry(t.Context(), 3, time.Millisecond, func() error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("Retry() = %v, want %v", err, permanent)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retry for permanent errors)", attempts)
	}
}
