package history

import (
	"context"
	"errors"
	"strings"

	"unbounded/internal/app/access"
	"unbounded/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid history request")

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Request struct {
	CharacterID string
	OwnerID     string
	Limit       int
}

type Response struct {
	Interactions []ports.InteractionRecord `json:"interactions"`
}

type UseCase struct {
	Interactions ports.InteractionRepository
	Characters   ports.CharacterRepository
}

// Execute lists the most recent interactions, newest first.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.CharacterID = strings.TrimSpace(req.CharacterID)
	if req.CharacterID == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if err := access.Authorize(ctx, u.Characters, req.CharacterID, req.OwnerID); err != nil {
		return Response{}, err
	}
	limit := req.Limit
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	records, err := u.Interactions.ListByCharacterID(ctx, req.CharacterID, limit)
	if err != nil {
		return Response{}, err
	}
	if records == nil {
		records = []ports.InteractionRecord{}
	}
	return Response{Interactions: records}, nil
}
