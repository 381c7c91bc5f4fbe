package character

import (
	"math"
	"time"
)

var interactionEffects = DefaultInteractionEffects()

func IsKnownKind(kind InteractionKind) bool {
	if kind == InteractionChat {
		return true
	}
	_, ok := interactionEffects[kind]
	return ok
}

// ApplyInteraction applies the fixed delta table for kind, scaled by successLevel.
// Unknown kinds are a strict no-op: LastInteraction is not touched either.
func ApplyInteraction(state State, kind InteractionKind, successLevel float64, now time.Time) State {
	next := state.Clone()
	if !IsKnownKind(kind) {
		next.clampVitals()
		return next
	}

	at := now
	next.LastInteraction = &at

	effect := interactionEffects[kind]
	level := clampFloat(successLevel, 0, 1)
	next.Hunger += scaleDelta(effect.Hunger, level)
	next.Energy += scaleDelta(effect.Energy, level)
	next.Happiness += scaleDelta(effect.Happiness, level)
	next.Fatigue += scaleDelta(effect.Fatigue, level)
	next.Stress += scaleDelta(effect.Stress, level)
	next.Health += scaleDelta(effect.Health, level)

	next.clampVitals()
	return next
}

// ApplyResponseEffects applies collaborator-reported deltas, each bounded to
// [-ResponseEffectBound, ResponseEffectBound] before it touches the state.
func ApplyResponseEffects(state State, effects Effects) State {
	next := state.Clone()
	bound := func(v int) int { return clampInt(v, -ResponseEffectBound, ResponseEffectBound) }
	next.Health += bound(effects[VitalHealth])
	next.Energy += bound(effects[VitalEnergy])
	next.Happiness += bound(effects[VitalHappiness])
	next.Hunger += bound(effects[VitalHunger])
	next.Fatigue += bound(effects[VitalFatigue])
	next.Stress += bound(effects[VitalStress])
	next.clampVitals()
	return next
}

// scaleDelta truncates toward zero so partial success never overshoots the table.
func scaleDelta(delta int, level float64) int {
	if delta == 0 {
		return 0
	}
	return int(math.Trunc(float64(delta) * level))
}
