package memory

import (
	"context"
	"slices"
	"strings"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

type CharacterRepo struct {
	store *Store
}

func NewCharacterRepo(store *Store) CharacterRepo {
	return CharacterRepo{store: store}
}

func (r CharacterRepo) Create(ctx context.Context, profile character.Profile) (err error) {
	r.store.with(ctx, func() {
		if _, exists := r.store.profiles[profile.ID]; exists {
			err = ports.ErrConflict
			return
		}
		r.store.profiles[profile.ID] = profile
	})
	return err
}

func (r CharacterRepo) Get(ctx context.Context, characterID string) (profile character.Profile, err error) {
	r.store.with(ctx, func() {
		p, ok := r.store.profiles[characterID]
		if !ok {
			err = ports.ErrNotFound
			return
		}
		profile = p
	})
	return profile, err
}

func (r CharacterRepo) ListByOwner(ctx context.Context, ownerID string, offset, limit int) (out []character.Profile, err error) {
	r.store.with(ctx, func() {
		for _, p := range r.store.profiles {
			if p.OwnerID == ownerID {
				out = append(out, p)
			}
		}
	})
	slices.SortFunc(out, func(a, b character.Profile) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if offset >= len(out) {
		return []character.Profile{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
