package status

import (
	"time"

	"unbounded/internal/app/stateview"
	"unbounded/internal/domain/character"
)

type Request struct {
	CharacterID string
	OwnerID     string
}

type Response struct {
	State            character.State        `json:"state"`
	StatusFlags      []string               `json:"status_flags"`
	DominantTrait    string                 `json:"dominant_trait,omitempty"`
	AchievementCount int                    `json:"achievement_count"`
	Needs            stateview.NeedForecast `json:"needs"`
	Projected        bool                   `json:"projected"`
	ServerTime       time.Time              `json:"server_time"`
}
