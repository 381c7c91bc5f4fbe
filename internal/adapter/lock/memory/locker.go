package memlock

import (
	"context"
	"sync"
	"time"

	"unbounded/internal/app/ports"
)

type lease struct {
	seq     uint64
	expires time.Time
}

// Locker is a single-process CharacterLocker for development and tests.
type Locker struct {
	Now func() time.Time

	mu     sync.Mutex
	seq    uint64
	leases map[string]lease
}

var _ ports.CharacterLocker = (*Locker)(nil)

func NewLocker() *Locker {
	return &Locker{leases: map[string]lease{}}
}

func (l *Locker) Acquire(_ context.Context, characterID string, ttl time.Duration) (func(context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.leases[characterID]; ok && now.Before(held.expires) {
		return nil, ports.ErrLocked
	}
	l.seq++
	mine := lease{seq: l.seq, expires: now.Add(ttl)}
	if l.leases == nil {
		l.leases = map[string]lease{}
	}
	l.leases[characterID] = mine

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if cur, ok := l.leases[characterID]; ok && cur.seq == mine.seq {
			delete(l.leases, characterID)
		}
		return nil
	}, nil
}

func (l *Locker) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}
