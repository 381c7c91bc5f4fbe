package inmemory

import (
	"testing"

	"unbounded/internal/domain/character"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(character.InteractionFeed, true)
	r.RecordSuccess(character.InteractionFeed, true)
	r.RecordSuccess("juggle", false)
	r.RecordConflict()
	r.RecordFailure()
	r.RecordFallback()

	s := r.Snapshot()
	if s.InteractionTotal != 5 {
		t.Fatalf("expected total 5, got %d", s.InteractionTotal)
	}
	if s.InteractionSuccess != 3 || s.InteractionIgnored != 1 {
		t.Fatalf("expected success 3 / ignored 1, got %d / %d", s.InteractionSuccess, s.InteractionIgnored)
	}
	if s.InteractionConflict != 1 || s.InteractionFailure != 1 {
		t.Fatalf("expected conflict 1 / failure 1, got %d / %d", s.InteractionConflict, s.InteractionFailure)
	}
	if s.ReplyFallback != 1 {
		t.Fatalf("expected fallback 1, got %d", s.ReplyFallback)
	}
	if s.ByKind["feed"] != 2 {
		t.Fatalf("expected feed count 2, got %d", s.ByKind["feed"])
	}
	if _, ok := s.ByKind["juggle"]; ok {
		t.Fatalf("ignored kinds should not be counted by kind")
	}
}

func TestRecorderSnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(character.InteractionRest, true)
	s := r.Snapshot()
	s.ByKind["rest"] = 100
	if r.Snapshot().ByKind["rest"] != 1 {
		t.Fatalf("snapshot shares its map with the recorder")
	}
}
