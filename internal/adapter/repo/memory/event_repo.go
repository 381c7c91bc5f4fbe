package memory

import (
	"context"

	"unbounded/internal/domain/character"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, characterID string, events []character.DomainEvent) error {
	r.store.with(ctx, func() {
		r.store.events[characterID] = append(r.store.events[characterID], events...)
	})
	return nil
}

func (r EventRepo) ListByCharacterID(ctx context.Context, characterID string, limit int) (out []character.DomainEvent, err error) {
	r.store.with(ctx, func() {
		all := r.store.events[characterID]
		n := len(all)
		if limit > 0 && limit < n {
			n = limit
		}
		out = make([]character.DomainEvent, 0, n)
		for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, all[i])
		}
	})
	return out, nil
}
