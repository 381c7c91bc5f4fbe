package ports

import (
	"context"
	"time"

	"unbounded/internal/domain/character"
)

type InteractionResult struct {
	UpdatedState character.State                 `json:"updated_state"`
	Applied      bool                            `json:"applied"`
	Influence    map[character.TraitName]float64 `json:"personality_influence"`
	SuccessScore float64                         `json:"success_score"`
	Unlocked     []character.Achievement         `json:"unlocked_achievements"`
	Events       []character.DomainEvent         `json:"events"`
}

type InteractionRecord struct {
	ID             string              `json:"id"`
	CharacterID    string              `json:"character_id"`
	IdempotencyKey string              `json:"idempotency_key,omitempty"`
	Kind           string              `json:"kind"`
	Content        string              `json:"content,omitempty"`
	SuccessLevel   float64             `json:"success_level"`
	Response       *character.Response `json:"response,omitempty"`
	Result         InteractionResult   `json:"result"`
	OccurredAt     time.Time           `json:"occurred_at"`
}

type CharacterStateRepository interface {
	GetByCharacterID(ctx context.Context, characterID string) (character.State, error)
	// SaveWithVersion inserts when expectedVersion is 0, otherwise updates only if
	// the stored version still equals expectedVersion. Mismatch is ErrConflict.
	SaveWithVersion(ctx context.Context, state character.State, expectedVersion int64) error
	ListCharacterIDs(ctx context.Context) ([]string, error)
}

type CharacterRepository interface {
	Create(ctx context.Context, profile character.Profile) error
	Get(ctx context.Context, characterID string) (character.Profile, error)
}

type CharacterLister interface {
	// ListByOwner returns the owner's characters oldest first.
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]character.Profile, error)
}

type InteractionRepository interface {
	GetByIdempotencyKey(ctx context.Context, characterID, key string) (*InteractionRecord, error)
	Save(ctx context.Context, record InteractionRecord) error
	// ListByCharacterID returns newest first.
	ListByCharacterID(ctx context.Context, characterID string, limit int) ([]InteractionRecord, error)
}

type EventRepository interface {
	Append(ctx context.Context, characterID string, events []character.DomainEvent) error
	ListByCharacterID(ctx context.Context, characterID string, limit int) ([]character.DomainEvent, error)
}
