package roster

import (
	"context"
	"errors"
	"strings"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

var ErrInvalidRequest = errors.New("invalid roster request")

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

type Request struct {
	OwnerID string
	Offset  int
	Limit   int
}

type Response struct {
	Characters []character.Profile `json:"characters"`
}

type UseCase struct {
	Characters ports.CharacterLister
}

// Execute pages through the owner's characters. Unlike the per-character
// reads, an owner is required here.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	owner := strings.TrimSpace(req.OwnerID)
	if owner == "" || req.Offset < 0 || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	profiles, err := u.Characters.ListByOwner(ctx, owner, req.Offset, limit)
	if err != nil {
		return Response{}, err
	}
	if profiles == nil {
		profiles = []character.Profile{}
	}
	return Response{Characters: profiles}, nil
}
