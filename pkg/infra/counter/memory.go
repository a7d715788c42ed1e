package counter

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryStore keeps counters in process memory. Counts are local to one
// instance.
type MemoryStore struct {
	mu       sync.Mutex
	events   map[string][]time.Time
	members  map[string]map[string]time.Time
	counters sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events:  make(map[string][]time.Time),
		members: make(map[string]map[string]time.Time),
	}
}

func (s *MemoryStore) Hit(_ context.Context, key string, at time.Time, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[key][:0]
	for _, ts := range s.events[key] {
		if inWindow(ts, at, window) {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, at)
	s.events[key] = kept
	return int64(len(kept)), nil
}

func (s *MemoryStore) Track(_ context.Context, key, member string, at time.Time, window time.Duration) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.members[key]
	if !ok {
		set = make(map[string]time.Time)
		s.members[key] = set
	}
	for m, ts := range set {
		if !inWindow(ts, at, window) {
			delete(set, m)
		}
	}
	if last, ok := set[member]; !ok || at.After(last) {
		set[member] = at
	}

	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) Incr(_ context.Context, key string) (int64, error) {
	v, _ := s.counters.LoadOrStore(key, new(atomic.Int64))
	counter, ok := v.(*atomic.Int64)
	if !ok {
		return 0, nil
	}
	return counter.Add(1), nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (int64, error) {
	v, ok := s.counters.Load(key)
	if !ok {
		return 0, nil
	}
	counter, ok := v.(*atomic.Int64)
	if !ok {
		return 0, nil
	}
	return counter.Load(), nil
}

// Sweep drops window entries older than window relative to now.
func (s *MemoryStore) Sweep(now time.Time, window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, events := range s.events {
		kept := events[:0]
		for _, ts := range events {
			if inWindow(ts, now, window) {
				kept = append(kept, ts)
			}
		}
		if len(kept) == 0 {
			delete(s.events, key)
			continue
		}
		s.events[key] = kept
	}
	for key, set := range s.members {
		for m, ts := range set {
			if !inWindow(ts, now, window) {
				delete(set, m)
			}
		}
		if len(set) == 0 {
			delete(s.members, key)
		}
	}
}

// RunJanitor sweeps expired entries every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval, window time.Duration) {
	if interval <= 0 {
		interval = window
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now, window)
		}
	}
}

// Len reports how many keys are held.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events) + len(s.members)
}

func inWindow(ts, now time.Time, window time.Duration) bool {
	return now.Sub(ts) < window
}
