package oauth

import (
	"sync"
	"time"
)

const (
	DefaultStateTTL      = 10 * time.Minute
	DefaultStateCapacity = 1024
)

// StateStore holder utstedte CSRF-state-verdier frem til callback.
type StateStore interface {
	Save(state string) error
	// Consume returnerer true bare første gang for en gyldig, ikke-utløpt state.
	Consume(state string) bool
}

// MemoryStateStore er en StateStore i minnet med levetid og øvre grense på antall.
// Når kapasiteten er nådd fjernes den eldste state-verdien.
type MemoryStateStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	now      func() time.Time
	expires  map[string]time.Time
	order    []string
}

func NewMemoryStateStore(ttl time.Duration, capacity int) *MemoryStateStore {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	if capacity <= 0 {
		capacity = DefaultStateCapacity
	}
	return &MemoryStateStore{
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
		expires:  make(map[string]time.Time),
	}
}

// WithClock brukes i tester.
func (s *MemoryStateStore) WithClock(now func() time.Time) *MemoryStateStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *MemoryStateStore) Save(state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	if _, exists := s.expires[state]; !exists {
		s.order = append(s.order, state)
	}
	s.expires[state] = now.Add(s.ttl)

	for len(s.expires) > s.capacity {
		s.evictOldestLocked()
	}
	return nil
}

func (s *MemoryStateStore) Consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.expires[state]
	if !ok {
		return false
	}
	delete(s.expires, state)
	return s.now().Before(exp)
}

func (s *MemoryStateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expires)
}

// pruneLocked fjerner utløpte og allerede brukte verdier fra starten av køen.
// Alle verdier har samme ttl, så køen er sortert på utløpstid.
func (s *MemoryStateStore) pruneLocked(now time.Time) {
	i := 0
	for ; i < len(s.order); i++ {
		exp, ok := s.expires[s.order[i]]
		if ok && now.Before(exp) {
			break
		}
		delete(s.expires, s.order[i])
	}
	s.order = s.order[i:]
}

func (s *MemoryStateStore) evictOldestLocked() {
	for len(s.order) > 0 {
		oldest := s.order[0]
		s.order = s.order[1:]
		if _, ok := s.expires[oldest]; ok {
			delete(s.expires, oldest)
			return
		}
	}
}
