package creation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

var ErrInvalidRequest = errors.New("invalid character request")

const (
	maxNameLength  = 80
	createAttempts = 3
)

type Request struct {
	OwnerID     string
	Name        string
	Description string
	Backstory   string
	// Traits optionally overrides the neutral starting personality, keyed by trait name.
	Traits map[string]int
}

type Response struct {
	Character character.Profile `json:"character"`
	State     character.State   `json:"state"`
}

type UseCase struct {
	Characters ports.CharacterRepository
	StateRepo  ports.CharacterStateRepository
	TxManager  ports.TxManager
	IDs        ports.IDGenerator
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Characters == nil || u.StateRepo == nil || u.TxManager == nil || u.IDs == nil {
		return Response{}, ErrInvalidRequest
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || len(req.Name) > maxNameLength {
		return Response{}, ErrInvalidRequest
	}
	personality, err := startingPersonality(req.Traits)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()

	for i := 0; i < createAttempts; i++ {
		profile := character.Profile{
			ID:          u.IDs.NewID(),
			OwnerID:     strings.TrimSpace(req.OwnerID),
			Name:        req.Name,
			Description: strings.TrimSpace(req.Description),
			Backstory:   strings.TrimSpace(req.Backstory),
			CreatedAt:   now,
		}
		state := character.NewState(profile.ID, now)
		state.Personality = personality

		err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			if err := u.Characters.Create(txCtx, profile); err != nil {
				return err
			}
			return u.StateRepo.SaveWithVersion(txCtx, state, 0)
		})
		if errors.Is(err, ports.ErrConflict) {
			hlog.CtxWarnf(ctx, "character id %s already taken, retrying", profile.ID)
			continue
		}
		if err != nil {
			return Response{}, err
		}
		hlog.CtxInfof(ctx, "created character %s for owner %q", profile.ID, profile.OwnerID)
		return Response{Character: profile, State: state}, nil
	}
	return Response{}, ports.ErrConflict
}

func startingPersonality(overrides map[string]int) (character.Personality, error) {
	p := character.NewPersonality()
	for name, value := range overrides {
		if value < character.MinStat || value > character.MaxStat {
			return character.Personality{}, ErrInvalidRequest
		}
		var ok bool
		p, ok = p.WithValue(character.TraitName(strings.ToLower(name)), value)
		if !ok {
			return character.Personality{}, ErrInvalidRequest
		}
	}
	return p, nil
}
