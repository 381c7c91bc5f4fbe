package memory

import (
	"context"
	"sort"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

type CharacterStateRepo struct {
	store *Store
}

func NewCharacterStateRepo(store *Store) CharacterStateRepo {
	return CharacterStateRepo{store: store}
}

func (r CharacterStateRepo) GetByCharacterID(ctx context.Context, characterID string) (state character.State, err error) {
	r.store.with(ctx, func() {
		s, ok := r.store.state[characterID]
		if !ok {
			err = ports.ErrNotFound
			return
		}
		state = s.Clone()
	})
	return state, err
}

func (r CharacterStateRepo) SaveWithVersion(ctx context.Context, state character.State, expectedVersion int64) (err error) {
	r.store.with(ctx, func() {
		current, ok := r.store.state[state.CharacterID]
		switch {
		case !ok && expectedVersion != 0:
			err = ports.ErrConflict
		case ok && expectedVersion == 0:
			err = ports.ErrConflict
		case ok && current.Version != expectedVersion:
			err = ports.ErrConflict
		default:
			r.store.state[state.CharacterID] = state.Clone()
		}
	})
	return err
}

func (r CharacterStateRepo) ListCharacterIDs(ctx context.Context) (ids []string, err error) {
	r.store.with(ctx, func() {
		ids = make([]string, 0, len(r.store.state))
		for id := range r.store.state {
			ids = append(ids, id)
		}
	})
	sort.Strings(ids)
	return ids, nil
}
