package memory

import (
	"context"
	"maps"
	"sync"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

// Store backs the in-memory repositories. Repositories lock it per call unless
// the context is already inside a TxManager transaction holding the lock.
type Store struct {
	mu           sync.Mutex
	profiles     map[string]character.Profile
	state        map[string]character.State
	interactions map[string][]ports.InteractionRecord
	events       map[string][]character.DomainEvent
}

func NewStore() *Store {
	return &Store{
		profiles:     make(map[string]character.Profile),
		state:        make(map[string]character.State),
		interactions: make(map[string][]ports.InteractionRecord),
		events:       make(map[string][]character.DomainEvent),
	}
}

func (s *Store) SeedState(state character.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[state.CharacterID] = state.Clone()
}

type txKeyType struct{}

func (s *Store) with(ctx context.Context, fn func()) {
	if owner, ok := ctx.Value(txKeyType{}).(*Store); ok && owner == s {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

type snapshot struct {
	profiles     map[string]character.Profile
	state        map[string]character.State
	interactions map[string][]ports.InteractionRecord
	events       map[string][]character.DomainEvent
}

// Stored values are replaced, never mutated in place, so shallow copies suffice.
func (s *Store) snapshot() snapshot {
	return snapshot{
		profiles:     maps.Clone(s.profiles),
		state:        maps.Clone(s.state),
		interactions: maps.Clone(s.interactions),
		events:       maps.Clone(s.events),
	}
}

func (s *Store) restore(snap snapshot) {
	s.profiles = snap.profiles
	s.state = snap.state
	s.interactions = snap.interactions
	s.events = snap.events
}
