package syncer

import (
	"sync"

	"feedsync/internal/domain"
)

// StateStream broadcasts sync state transitions to any number of observers.
// New subscribers immediately receive the current state so late joiners can
// render progress without waiting for the next transition.
type StateStream struct {
	mu      sync.Mutex
	current domain.SyncState
	subs    map[chan domain.SyncState]struct{}
}

func NewStateStream() *StateStream {
	return &StateStream{
		current: domain.SyncStateIdle(),
		subs:    make(map[chan domain.SyncState]struct{}),
	}
}

// Subscribe registers an observer. The returned cancel func must be called
// when the observer is done; the channel is closed by it.
func (s *StateStream) Subscribe() (<-chan domain.SyncState, func()) {
	ch := make(chan domain.SyncState, 16)
	s.mu.Lock()
	ch <- s.current
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Current returns the latest published state.
func (s *StateStream) Current() domain.SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Publish records state as current and fans it out. Slow observers whose
// buffer is full miss intermediate transitions rather than blocking the
// sync loop; they always see the latest state on their next receive or via
// Current.
func (s *StateStream) Publish(state domain.SyncState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = state
	for ch := range s.subs {
		select {
		case ch <- state:
		default:
		}
	}
}
