package inmemory

import (
	"sync"

	"unbounded/internal/domain/character"
)

type Snapshot struct {
	InteractionTotal    uint64            `json:"interaction_total"`
	InteractionSuccess  uint64            `json:"interaction_success"`
	InteractionIgnored  uint64            `json:"interaction_ignored"`
	InteractionConflict uint64            `json:"interaction_conflict"`
	InteractionFailure  uint64            `json:"interaction_failure"`
	ReplyFallback       uint64            `json:"reply_fallback"`
	ByKind              map[string]uint64 `json:"by_kind"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	ignored  uint64
	conflict uint64
	failure  uint64
	fallback uint64
	byKind   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(kind character.InteractionKind, applied bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	if !applied {
		r.ignored++
		return
	}
	r.byKind[string(kind)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

// RecordFallback counts replies replaced by the fallback; it is not part of the total.
func (r *Recorder) RecordFallback() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		InteractionSuccess:  r.success,
		InteractionIgnored:  r.ignored,
		InteractionConflict: r.conflict,
		InteractionFailure:  r.failure,
		InteractionTotal:    r.success + r.conflict + r.failure,
		ReplyFallback:       r.fallback,
		ByKind:              make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byKind {
		out.ByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
