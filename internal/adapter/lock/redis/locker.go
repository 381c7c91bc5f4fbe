package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"unbounded/internal/app/ports"
)

const DefaultPrefix = "unbounded:lock:character:"

// ErrLockLost is returned by release when the lease expired and another holder took it.
var ErrLockLost = errors.New("character lock lost")

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker leases per-character locks with SET NX PX. Each lease carries a
// random token so a holder can never release a lock it no longer owns.
type Locker struct {
	Client redis.Cmdable
	Prefix string
	Tokens ports.IDGenerator
}

var _ ports.CharacterLocker = Locker{}

func (l Locker) Acquire(ctx context.Context, characterID string, ttl time.Duration) (func(context.Context) error, error) {
	key := l.key(characterID)
	token := l.Tokens.NewID()

	ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", key, err)
	}
	if !ok {
		return nil, ports.ErrLocked
	}

	return func(ctx context.Context) error {
		n, err := releaseScript.Run(ctx, l.Client, []string{key}, token).Int64()
		if err != nil {
			return fmt.Errorf("release %s: %w", key, err)
		}
		if n == 0 {
			return ErrLockLost
		}
		return nil
	}, nil
}

func (l Locker) key(characterID string) string {
	prefix := l.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + characterID
}
