package replay

import "unbounded/internal/domain/character"

type Request struct {
	CharacterID  string
	OwnerID      string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
	EventType    string
}

type Vitals struct {
	Health    int `json:"health"`
	Energy    int `json:"energy"`
	Happiness int `json:"happiness"`
	Hunger    int `json:"hunger"`
	Fatigue   int `json:"fatigue"`
	Stress    int `json:"stress"`
}

type Response struct {
	Events       []character.DomainEvent `json:"events"`
	LatestVitals Vitals                  `json:"latest_vitals"`
	Achievements []string                `json:"achievements"`
}
