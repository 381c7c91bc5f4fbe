package ports

//go:generate mockgen -destination=mocks/mock_responder.go -package=mocks unbounded/internal/app/ports ResponseGenerator

import (
	"context"

	"unbounded/internal/domain/character"
)

type ResponseRequest struct {
	Profile   character.Profile
	State     character.State
	Kind      character.InteractionKind
	Content   string
	Influence map[character.TraitName]float64
	History   []InteractionRecord
}

// ResponseGenerator produces an in-character reply. Errors are not fatal to an
// interaction; callers fall back to character.FallbackResponse.
type ResponseGenerator interface {
	Generate(ctx context.Context, req ResponseRequest) (character.Response, error)
}

type IDGenerator interface {
	NewID() string
}
