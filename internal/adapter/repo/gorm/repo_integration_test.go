package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"unbounded/db"
	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("UNBOUNDED_DB_DSN")
	if dsn == "" {
		t.Skip("UNBOUNDED_DB_DSN is required for integration test")
	}
	gdb, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if _, err := ApplyMigrations(context.Background(), gdb, db.Migrations, "migrations"); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return gdb
}

func seedCharacter(t *testing.T, gdb *gorm.DB, id string) character.State {
	t.Helper()
	_ = gdb.Exec("DELETE FROM characters WHERE id = ?", id).Error
	now := time.Now().UTC().Truncate(time.Microsecond)
	if err := NewCharacterRepo(gdb).Create(context.Background(), character.Profile{ID: id, OwnerID: "it-owner", Name: "It", CreatedAt: now}); err != nil {
		t.Fatalf("create character: %v", err)
	}
	state := character.NewState(id, now)
	state.Skills["cooking"] = 42
	state.Relationships["user123"] = 61
	state.Inventory = []string{"book"}
	if err := NewCharacterStateRepo(gdb).SaveWithVersion(context.Background(), state, 0); err != nil {
		t.Fatalf("seed state: %v", err)
	}
	return state
}

func TestCharacterStateRepo_RoundTripAndVersioning(t *testing.T) {
	gdb := requireDB(t)
	ctx := context.Background()
	seed := seedCharacter(t, gdb, "it-state-roundtrip")
	repo := NewCharacterStateRepo(gdb)

	got, err := repo.GetByCharacterID(ctx, seed.CharacterID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Skills["cooking"] != 42 || got.Relationships["user123"] != 61 || got.Inventory[0] != "book" {
		t.Fatalf("collections not round-tripped: %+v", got)
	}
	if got.Personality != seed.Personality {
		t.Fatalf("personality mismatch: %+v", got.Personality)
	}

	next := got.Clone()
	next.Hunger = 30
	next.Version = got.Version + 1
	if err := repo.SaveWithVersion(ctx, next, got.Version); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, next, got.Version); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
	if err := repo.SaveWithVersion(ctx, seed, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate insert, got %v", err)
	}
}

func TestInteractionAndEventRepos_PersistAndOrder(t *testing.T) {
	gdb := requireDB(t)
	ctx := context.Background()
	seed := seedCharacter(t, gdb, "it-interactions")

	interactions := NewInteractionRepo(gdb)
	events := NewEventRepo(gdb)
	tx := NewTxManager(gdb)

	base := time.Now().UTC().Truncate(time.Second)
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		for i, key := range []string{"k1", "k2"} {
			rec := ports.InteractionRecord{
				ID:             seed.CharacterID + "-" + key,
				CharacterID:    seed.CharacterID,
				IdempotencyKey: key,
				Kind:           "feed",
				SuccessLevel:   0.5,
				Response:       &character.Response{Content: "yum", Emotion: "happy"},
				Result:         ports.InteractionResult{UpdatedState: seed, Applied: true},
				OccurredAt:     base.Add(time.Duration(i) * time.Minute),
			}
			if err := interactions.Save(txCtx, rec); err != nil {
				return err
			}
			if err := events.Append(txCtx, seed.CharacterID, []character.DomainEvent{
				{Type: character.EventInteractionApplied, OccurredAt: rec.OccurredAt, Payload: map[string]any{"key": key}},
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	got, err := interactions.GetByIdempotencyKey(ctx, seed.CharacterID, "k1")
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if got.Response == nil || got.Response.Content != "yum" || got.SuccessLevel != 0.5 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if _, err := interactions.GetByIdempotencyKey(ctx, seed.CharacterID, "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := interactions.ListByCharacterID(ctx, seed.CharacterID, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].IdempotencyKey != "k2" {
		t.Fatalf("expected newest first, got %+v", list)
	}

	evts, err := events.ListByCharacterID(ctx, seed.CharacterID, 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(evts) != 2 || evts[0].Payload["key"] != "k2" {
		t.Fatalf("unexpected events: %+v", evts)
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	gdb := requireDB(t)
	ctx := context.Background()
	seed := seedCharacter(t, gdb, "it-rollback")
	repo := NewCharacterStateRepo(gdb)

	boom := errors.New("boom")
	err := NewTxManager(gdb).RunInTx(ctx, func(txCtx context.Context) error {
		next := seed.Clone()
		next.Hunger = 99
		next.Version = seed.Version + 1
		if err := repo.SaveWithVersion(txCtx, next, seed.Version); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, err := repo.GetByCharacterID(ctx, seed.CharacterID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Hunger != seed.Hunger || got.Version != seed.Version {
		t.Fatalf("rolled back write is visible: %+v", got)
	}
}

func TestCharacterRepo_ListByOwner(t *testing.T) {
	gdb := requireDB(t)
	ctx := context.Background()
	repo := NewCharacterRepo(gdb)
	_ = gdb.Exec("DELETE FROM characters WHERE owner_id = ?", "it-lister").Error

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, id := range []string{"it-list-b", "it-list-a"} {
		p := character.Profile{ID: id, OwnerID: "it-lister", Name: id, CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	got, err := repo.ListByOwner(ctx, "it-lister", 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "it-list-b" || got[1].ID != "it-list-a" {
		t.Fatalf("unexpected order: %+v", got)
	}
	page, err := repo.ListByOwner(ctx, "it-lister", 1, 10)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 || page[0].ID != "it-list-a" {
		t.Fatalf("unexpected page: %+v", page)
	}
}
