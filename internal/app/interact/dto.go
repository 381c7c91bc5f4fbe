package interact

import (
	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

type Request struct {
	CharacterID    string
	OwnerID        string
	IdempotencyKey string
	Interaction    character.Interaction
}

type Response struct {
	InteractionID string                  `json:"interaction_id"`
	Result        ports.InteractionResult `json:"result"`
	Reply         *character.Response     `json:"reply,omitempty"`
	Replayed      bool                    `json:"replayed"`
}
