package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

var t0 = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func TestCharacterStateRepo_OptimisticVersioning(t *testing.T) {
	store := NewStore()
	repo := NewCharacterStateRepo(store)
	ctx := context.Background()

	seed := character.NewState("c-1", t0)
	if err := repo.SaveWithVersion(ctx, seed, 0); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, seed, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on duplicate insert, got %v", err)
	}

	next := seed.Clone()
	next.Version = 2
	if err := repo.SaveWithVersion(ctx, next, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, next, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on stale version, got %v", err)
	}
	if _, err := repo.GetByCharacterID(ctx, "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCharacterStateRepo_ReturnsCopies(t *testing.T) {
	store := NewStore()
	repo := NewCharacterStateRepo(store)
	ctx := context.Background()
	store.SeedState(character.NewState("c-1", t0))

	got, _ := repo.GetByCharacterID(ctx, "c-1")
	got.Skills["cooking"] = 99
	again, _ := repo.GetByCharacterID(ctx, "c-1")
	if _, ok := again.Skills["cooking"]; ok {
		t.Fatalf("caller mutation leaked into the store")
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	tx := NewTxManager(store)
	states := NewCharacterStateRepo(store)
	events := NewEventRepo(store)
	ctx := context.Background()
	store.SeedState(character.NewState("c-1", t0))

	boom := errors.New("boom")
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		next, _ := states.GetByCharacterID(txCtx, "c-1")
		next.Hunger = 50
		next.Version = 2
		if err := states.SaveWithVersion(txCtx, next, 1); err != nil {
			return err
		}
		if err := events.Append(txCtx, "c-1", []character.DomainEvent{{Type: "x"}}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, _ := states.GetByCharacterID(ctx, "c-1")
	if got.Version != 1 || got.Hunger != 0 {
		t.Fatalf("write survived rollback: %+v", got)
	}
	if evts, _ := events.ListByCharacterID(ctx, "c-1", 0); len(evts) != 0 {
		t.Fatalf("events survived rollback: %+v", evts)
	}
}

func TestTxManager_NestedJoinsOuter(t *testing.T) {
	store := NewStore()
	tx := NewTxManager(store)
	err := tx.RunInTx(context.Background(), func(outer context.Context) error {
		return tx.RunInTx(outer, func(context.Context) error { return nil })
	})
	if err != nil {
		t.Fatalf("nested tx: %v", err)
	}
}

func TestInteractionRepo_NewestFirstAndIdempotency(t *testing.T) {
	repo := NewInteractionRepo(NewStore())
	ctx := context.Background()
	for i, key := range []string{"a", "b", "c"} {
		rec := ports.InteractionRecord{ID: key, CharacterID: "c-1", IdempotencyKey: key, OccurredAt: t0.Add(time.Duration(i) * time.Minute)}
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", key, err)
		}
	}
	if err := repo.Save(ctx, ports.InteractionRecord{ID: "d", CharacterID: "c-1", IdempotencyKey: "a"}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on reused key, got %v", err)
	}

	list, _ := repo.ListByCharacterID(ctx, "c-1", 2)
	if len(list) != 2 || list[0].ID != "c" || list[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", list)
	}
	rec, err := repo.GetByIdempotencyKey(ctx, "c-1", "b")
	if err != nil || rec.ID != "b" {
		t.Fatalf("lookup by key: %+v %v", rec, err)
	}
	if _, err := repo.GetByIdempotencyKey(ctx, "c-1", ""); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("empty key should not match, got %v", err)
	}
}

func TestStore_ConcurrentAccessOutsideTx(t *testing.T) {
	store := NewStore()
	states := NewCharacterStateRepo(store)
	events := NewEventRepo(store)
	store.SeedState(character.NewState("c-1", t0))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = states.GetByCharacterID(context.Background(), "c-1")
			_ = events.Append(context.Background(), "c-1", []character.DomainEvent{{Type: "x"}})
		}()
	}
	wg.Wait()
	if evts, _ := events.ListByCharacterID(context.Background(), "c-1", 0); len(evts) != 20 {
		t.Fatalf("events = %d, want 20", len(evts))
	}
}
