package ports

//go:generate mockgen -destination=mocks/mock_locker.go -package=mocks unbounded/internal/app/ports CharacterLocker

import (
	"context"
	"time"
)

// CharacterLocker serialises interactions per character across server instances.
// Acquire returns ErrLocked when another holder owns the lock.
type CharacterLocker interface {
	Acquire(ctx context.Context, characterID string, ttl time.Duration) (release func(context.Context) error, err error)
}
