package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"unbounded/internal/app/access"
	"unbounded/internal/app/ports"
	"unbounded/internal/app/stateview"
	"unbounded/internal/domain/character"
)

var ErrInvalidRequest = errors.New("invalid status request")

// UseCase reads a character's state projected forward to now. The projection
// is never persisted; the next interaction applies the same decay for real.
type UseCase struct {
	StateRepo  ports.CharacterStateRepository
	Characters ports.CharacterRepository
	Sim        character.SimulationService
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.CharacterID = strings.TrimSpace(req.CharacterID)
	if req.CharacterID == "" {
		return Response{}, ErrInvalidRequest
	}
	if err := access.Authorize(ctx, u.Characters, req.CharacterID, req.OwnerID); err != nil {
		return Response{}, err
	}
	state, err := u.StateRepo.GetByCharacterID(ctx, req.CharacterID)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()
	projected, changed := u.Sim.Decay(state, now)
	view := stateview.Enrich(projected)

	return Response{
		State:            view.State,
		StatusFlags:      view.StatusFlags,
		DominantTrait:    view.DominantTrait,
		AchievementCount: view.AchievementCount,
		Needs:            stateview.EstimateNeeds(projected),
		Projected:        changed,
		ServerTime:       now,
	}, nil
}
