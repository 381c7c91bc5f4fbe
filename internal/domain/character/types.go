package character

import "time"

type TraitName string

const (
	TraitOpenness          TraitName = "openness"
	TraitConscientiousness TraitName = "conscientiousness"
	TraitExtraversion      TraitName = "extraversion"
	TraitAgreeableness     TraitName = "agreeableness"
	TraitNeuroticism       TraitName = "neuroticism"
)

var TraitNames = []TraitName{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

type Trait struct {
	Value             int `json:"value"`
	DevelopmentPoints int `json:"development_points"`
}

type Personality struct {
	Openness          Trait `json:"openness"`
	Conscientiousness Trait `json:"conscientiousness"`
	Extraversion      Trait `json:"extraversion"`
	Agreeableness     Trait `json:"agreeableness"`
	Neuroticism       Trait `json:"neuroticism"`
}

type State struct {
	CharacterID     string         `json:"character_id"`
	Health          int            `json:"health"`
	Energy          int            `json:"energy"`
	Happiness       int            `json:"happiness"`
	Hunger          int            `json:"hunger"`
	Fatigue         int            `json:"fatigue"`
	Stress          int            `json:"stress"`
	LastInteraction *time.Time     `json:"last_interaction,omitempty"`
	Personality     Personality    `json:"personality_traits"`
	Skills          map[string]int `json:"skills"`
	Inventory       []string       `json:"inventory"`
	Achievements    []Achievement  `json:"achievements"`
	Relationships   map[string]int `json:"relationships"`
	Location        string         `json:"location"`
	Activity        string         `json:"activity"`
	Version         int64          `json:"version"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type InteractionKind string

const (
	InteractionFeed      InteractionKind = "feed"
	InteractionRest      InteractionKind = "rest"
	InteractionPlay      InteractionKind = "play"
	InteractionExercise  InteractionKind = "exercise"
	InteractionSocialize InteractionKind = "socialize"
	InteractionLearn     InteractionKind = "learn"
	// InteractionChat carries no stat deltas; it only feeds the personality model.
	InteractionChat InteractionKind = "chat"
)

// PersonalityContext keys the trait influence and development tables.
type PersonalityContext string

const (
	ContextChat   PersonalityContext = "chat"
	ContextTask   PersonalityContext = "task"
	ContextSocial PersonalityContext = "social"
)

type Achievement string

const (
	AchievementMasterChef      Achievement = "master_chef"
	AchievementSocialButterfly Achievement = "social_butterfly"
	AchievementWellBalanced    Achievement = "well_balanced"
	AchievementSkillCollector  Achievement = "skill_collector"
	AchievementIronWill        Achievement = "iron_will"
)

// Interaction is the descriptor handed to Step. Zero values mean "not supplied".
type Interaction struct {
	Kind                InteractionKind `json:"kind"`
	SuccessLevel        *float64        `json:"success_level,omitempty"`
	SkillName           string          `json:"skill_name,omitempty"`
	ExperiencePoints    int             `json:"experience_points,omitempty"`
	RelationshipTarget  string          `json:"relationship_target,omitempty"`
	RelationshipQuality float64         `json:"relationship_quality,omitempty"`
	Content             string          `json:"content,omitempty"`
}

const (
	VitalHealth    = "health"
	VitalEnergy    = "energy"
	VitalHappiness = "happiness"
	VitalHunger    = "hunger"
	VitalFatigue   = "fatigue"
	VitalStress    = "stress"
)

var Vitals = []string{VitalHealth, VitalEnergy, VitalHappiness, VitalHunger, VitalFatigue, VitalStress}

// Effects are per-vital deltas reported by the response collaborator. Only the
// vitals it actually reported are present.
type Effects map[string]int

// NeutralEffects reports every vital with a zero delta.
func NeutralEffects() Effects {
	out := make(Effects, len(Vitals))
	for _, v := range Vitals {
		out[v] = 0
	}
	return out
}

type Response struct {
	Content string  `json:"content"`
	Emotion string  `json:"emotion"`
	Action  string  `json:"action,omitempty"`
	Effects Effects `json:"effects,omitempty"`
}

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

type StepResult struct {
	UpdatedState State                 `json:"updated_state"`
	Applied      bool                  `json:"applied"`
	Influence    map[TraitName]float64 `json:"personality_influence"`
	SuccessScore float64               `json:"success_score"`
	Unlocked     []Achievement         `json:"unlocked_achievements"`
	Events       []DomainEvent         `json:"events"`
}

type Profile struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Backstory   string    `json:"backstory,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
