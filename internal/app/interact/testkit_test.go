package interact

import (
	"context"
	"errors"
	"time"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubStateRepo struct {
	byCharacter map[string]character.State
	saves       int
}

func (r *stubStateRepo) GetByCharacterID(_ context.Context, characterID string) (character.State, error) {
	state, ok := r.byCharacter[characterID]
	if !ok {
		return character.State{}, ports.ErrNotFound
	}
	return state.Clone(), nil
}

func (r *stubStateRepo) SaveWithVersion(_ context.Context, state character.State, expectedVersion int64) error {
	current, ok := r.byCharacter[state.CharacterID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.byCharacter[state.CharacterID] = state
		r.saves++
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byCharacter[state.CharacterID] = state
	r.saves++
	return nil
}

func (r *stubStateRepo) ListCharacterIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.byCharacter))
	for id := range r.byCharacter {
		ids = append(ids, id)
	}
	return ids, nil
}

type conflictOnSaveStateRepo struct {
	stubStateRepo
}

func (r *conflictOnSaveStateRepo) SaveWithVersion(_ context.Context, _ character.State, _ int64) error {
	return ports.ErrConflict
}

type stubInteractionRepo struct {
	records []ports.InteractionRecord
}

func (r *stubInteractionRepo) GetByIdempotencyKey(_ context.Context, characterID, key string) (*ports.InteractionRecord, error) {
	for _, rec := range r.records {
		if rec.CharacterID == characterID && rec.IdempotencyKey == key {
			copy := rec
			return &copy, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *stubInteractionRepo) Save(_ context.Context, record ports.InteractionRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *stubInteractionRepo) ListByCharacterID(_ context.Context, characterID string, limit int) ([]ports.InteractionRecord, error) {
	out := []ports.InteractionRecord{}
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if r.records[i].CharacterID == characterID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

type stubEventRepo struct {
	events []character.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []character.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByCharacterID(_ context.Context, _ string, limit int) ([]character.DomainEvent, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]character.DomainEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}

type stubCharacterRepo struct {
	profiles map[string]character.Profile
}

func (r stubCharacterRepo) Create(_ context.Context, p character.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r stubCharacterRepo) Get(_ context.Context, id string) (character.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return character.Profile{}, ports.ErrNotFound
	}
	return p, nil
}

type stubResponder struct {
	resp  character.Response
	err   error
	calls int
	last  ports.ResponseRequest
}

func (r *stubResponder) Generate(_ context.Context, req ports.ResponseRequest) (character.Response, error) {
	r.calls++
	r.last = req
	return r.resp, r.err
}

type stubLocker struct {
	held     map[string]bool
	acquired int
	released int
}

func (l *stubLocker) Acquire(_ context.Context, characterID string, _ time.Duration) (func(context.Context) error, error) {
	if l.held[characterID] {
		return nil, ports.ErrLocked
	}
	l.held[characterID] = true
	l.acquired++
	return func(context.Context) error {
		delete(l.held, characterID)
		l.released++
		return nil
	}, nil
}

type stubMetrics struct {
	successCalls  int
	conflictCalls int
	failureCalls  int
	fallbackCalls int
	lastKind      character.InteractionKind
	lastApplied   bool
}

func (m *stubMetrics) RecordSuccess(kind character.InteractionKind, applied bool) {
	m.successCalls++
	m.lastKind = kind
	m.lastApplied = applied
}

func (m *stubMetrics) RecordConflict() { m.conflictCalls++ }
func (m *stubMetrics) RecordFailure()  { m.failureCalls++ }
func (m *stubMetrics) RecordFallback() { m.fallbackCalls++ }

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return "int-" + string(rune('0'+s.n))
}

var errResponderDown = errors.New("responder down")

var (
	_ ports.CharacterStateRepository = (*stubStateRepo)(nil)
	_ ports.InteractionRepository    = (*stubInteractionRepo)(nil)
	_ ports.EventRepository          = (*stubEventRepo)(nil)
	_ ports.CharacterRepository      = stubCharacterRepo{}
	_ ports.ResponseGenerator        = (*stubResponder)(nil)
	_ ports.CharacterLocker          = (*stubLocker)(nil)
	_ ports.InteractionMetrics       = (*stubMetrics)(nil)
)
