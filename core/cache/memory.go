package cache

import (
	"context"
	"fmt"
	"time"

	"school-admin/core/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	value   string
	expires time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

// Memory is an in-process LRU cache. Entries past their expiry are dropped on read.
type Memory struct {
	lru *lru.Cache[string, entry]
	now func() time.Time
}

// NewMemory creates a memory cache holding at most size entries.
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		size = 10000
	}
	l, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &Memory{lru: l, now: time.Now}, nil
}

func (m *Memory) lookup(key string) (entry, bool) {
	e, ok := m.lru.Get(key)
	if !ok {
		return entry{}, false
	}
	if e.expired(m.now()) {
		m.lru.Remove(key)
		return entry{}, false
	}
	return e, true
}

func (m *Memory) Has(ctx context.Context, key string) (bool, error) {
	_, ok := m.lookup(key)
	return ok, nil
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	e, ok := m.lookup(key)
	if !ok {
		metrics.CacheMissesTotal.WithLabelValues(DriverMemory).Inc()
		return "", false, nil
	}
	metrics.CacheHitsTotal.WithLabelValues(DriverMemory).Inc()
	return e.value, true, nil
}

func (m *Memory) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.lru.Add(key, e)
	return nil
}

func (m *Memory) Flush(ctx context.Context) error {
	m.lru.Purge()
	return nil
}

// Len returns the number of entries, including expired ones not yet evicted.
func (m *Memory) Len() int {
	return m.lru.Len()
}
