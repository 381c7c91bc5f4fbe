package character

const (
	MinStat = 0
	MaxStat = 100

	DefaultTraitValue       = 50
	TraitPointsPerLevel     = 100
	TraitPointsPerSuccess   = 10
	MinSignificantInfluence = 0.05

	DefaultRelationship    = 50
	RelationshipDeltaScale = 5.0

	SkillDiminishingDivisor = 200.0

	DefaultLocation = "home"
	DefaultActivity = "resting"

	HungerRisePerHour  = 5
	FatigueRisePerHour = 4
	StressRisePerHour  = 3

	NeedThreshold = 70

	HungerEnergyDrainPerHour     = 3
	HungerHappinessDrainPerHour  = 2
	FatigueEnergyDrainPerHour    = 4
	FatigueHappinessDrainPerHour = 2
	StressHappinessDrainPerHour  = 3

	ResponseEffectBound = 10

	LowEnergyThreshold  = 20
	CriticalHealthLevel = 15
)

type InteractionEffect struct {
	Hunger    int
	Energy    int
	Happiness int
	Fatigue   int
	Stress    int
	Health    int
}

func DefaultInteractionEffects() map[InteractionKind]InteractionEffect {
	return map[InteractionKind]InteractionEffect{
		InteractionFeed:      {Hunger: -30, Energy: 10, Happiness: 5},
		InteractionRest:      {Energy: 30, Fatigue: -40, Stress: -20},
		InteractionPlay:      {Energy: -15, Happiness: 20, Fatigue: 10, Stress: -15},
		InteractionExercise:  {Energy: -25, Fatigue: 20, Stress: -10, Health: 15},
		InteractionSocialize: {Energy: -10, Happiness: 15, Stress: -25},
		InteractionLearn:     {Energy: -20, Fatigue: 15, Stress: 10},
	}
}

type traitWeight struct {
	Trait  TraitName
	Weight float64
}

var traitInfluenceTable = map[PersonalityContext][]traitWeight{
	ContextChat: {
		{TraitExtraversion, 0.3},
		{TraitAgreeableness, 0.2},
		{TraitNeuroticism, -0.1},
	},
	ContextTask: {
		{TraitConscientiousness, 0.4},
		{TraitOpenness, 0.2},
		{TraitNeuroticism, -0.2},
	},
	ContextSocial: {
		{TraitExtraversion, 0.4},
		{TraitAgreeableness, 0.3},
		{TraitOpenness, 0.1},
	},
}

var traitDevelopmentTable = map[PersonalityContext][]TraitName{
	ContextChat:   {TraitExtraversion, TraitAgreeableness},
	ContextTask:   {TraitConscientiousness, TraitOpenness},
	ContextSocial: {TraitExtraversion, TraitAgreeableness, TraitOpenness},
}

var personalityContextByKind = map[InteractionKind]PersonalityContext{
	InteractionChat:      ContextChat,
	InteractionSocialize: ContextSocial,
	InteractionLearn:     ContextTask,
	InteractionExercise:  ContextTask,
}

// PersonalityContextFor reports which personality context an interaction kind exercises, if any.
func PersonalityContextFor(kind InteractionKind) (PersonalityContext, bool) {
	ctx, ok := personalityContextByKind[kind]
	return ctx, ok
}

var emotionScores = map[string]float64{
	"happy":    1.0,
	"content":  0.8,
	"neutral":  0.5,
	"confused": 0.3,
	"sad":      0.2,
	"angry":    0.1,
}

const defaultEmotionScore = 0.5
