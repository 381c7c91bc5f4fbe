package memory

import (
	"context"

	"unbounded/internal/app/ports"
)

type InteractionRepo struct {
	store *Store
}

func NewInteractionRepo(store *Store) InteractionRepo {
	return InteractionRepo{store: store}
}

func (r InteractionRepo) GetByIdempotencyKey(ctx context.Context, characterID, key string) (rec *ports.InteractionRecord, err error) {
	err = ports.ErrNotFound
	if key == "" {
		return nil, err
	}
	r.store.with(ctx, func() {
		for _, got := range r.store.interactions[characterID] {
			if got.IdempotencyKey == key {
				copy := got
				rec, err = &copy, nil
				return
			}
		}
	})
	return rec, err
}

func (r InteractionRepo) Save(ctx context.Context, record ports.InteractionRecord) (err error) {
	r.store.with(ctx, func() {
		for _, got := range r.store.interactions[record.CharacterID] {
			if got.ID == record.ID || (record.IdempotencyKey != "" && got.IdempotencyKey == record.IdempotencyKey) {
				err = ports.ErrConflict
				return
			}
		}
		r.store.interactions[record.CharacterID] = append(r.store.interactions[record.CharacterID], record)
	})
	return err
}

// ListByCharacterID returns newest first. Records are appended in time order.
func (r InteractionRepo) ListByCharacterID(ctx context.Context, characterID string, limit int) (out []ports.InteractionRecord, err error) {
	r.store.with(ctx, func() {
		all := r.store.interactions[characterID]
		n := len(all)
		if limit > 0 && limit < n {
			n = limit
		}
		out = make([]ports.InteractionRecord, 0, n)
		for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, all[i])
		}
	})
	return out, nil
}
