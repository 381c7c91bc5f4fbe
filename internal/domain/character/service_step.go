package character

import (
	"errors"
	"time"
)

var ErrInvalidInteraction = errors.New("invalid interaction")

const (
	EventDecayApplied        = "decay_applied"
	EventInteractionApplied  = "interaction_applied"
	EventInteractionIgnored  = "interaction_ignored"
	EventAchievementUnlocked = "achievement_unlocked"
)

type SimulationService struct{}

// Step runs one simulation step: decay since the last update, the interaction
// itself, any collaborator effects, progression, personality and achievements.
func (SimulationService) Step(state State, in Interaction, now time.Time, resp *Response) (StepResult, error) {
	if in.Kind == "" {
		return StepResult{}, ErrInvalidInteraction
	}

	before := state.Clone()
	next := before
	events := make([]DomainEvent, 0, 3)

	if last, ok := decayReference(state); ok && now.After(last) {
		decayed := ApplyDecay(next, last, now)
		if vitalsChanged(next, decayed) {
			events = append(events, decayEvent(next, decayed, last, now))
		}
		next = decayed
	}

	level := 1.0
	if in.SuccessLevel != nil {
		level = clampFloat(*in.SuccessLevel, 0, 1)
	}

	result := StepResult{Influence: map[TraitName]float64{}, SuccessScore: level}
	known := IsKnownKind(in.Kind)
	if known {
		next = ApplyInteraction(next, in.Kind, level, now)
		if resp != nil {
			if len(resp.Effects) > 0 {
				next = ApplyResponseEffects(next, resp.Effects)
			}
			result.SuccessScore = SuccessScore(*resp)
		}
		if in.SkillName != "" {
			next = UpdateSkill(next, in.SkillName, in.ExperiencePoints)
		}
		if in.RelationshipTarget != "" {
			next = UpdateRelationship(next, in.RelationshipTarget, in.RelationshipQuality)
		}
		if ctx, ok := PersonalityContextFor(in.Kind); ok {
			result.Influence = Influence(next.Personality, ctx)
			next.Personality = UpdateTraits(next.Personality, ctx, result.SuccessScore)
		}
	}

	next, unlocked := EvaluateAchievements(next)
	next.UpdatedAt = now
	next.Version++

	eventType := EventInteractionApplied
	if !known {
		eventType = EventInteractionIgnored
	}
	events = append(events, DomainEvent{
		Type:       eventType,
		OccurredAt: now,
		Payload: map[string]any{
			"state_before": vitalsPayload(before),
			"decision":     interactionDecision(in, level),
			"state_after":  vitalsPayload(next),
			"result": map[string]any{
				"success_score": result.SuccessScore,
			},
		},
	})
	for _, a := range unlocked {
		events = append(events, achievementEvent(a, now))
	}

	result.UpdatedState = next
	result.Applied = known
	result.Unlocked = unlocked
	result.Events = events
	return result, nil
}

// Decay projects the state forward to now without applying any interaction.
func (SimulationService) Decay(state State, now time.Time) (State, bool) {
	last, ok := decayReference(state)
	if !ok || !now.After(last) {
		return state.Clone(), false
	}
	next := ApplyDecay(state, last, now)
	return next, vitalsChanged(state, next)
}

// AdvanceTime persists decay without an interaction: the result carries a
// bumped version and UpdatedAt = now. Nothing happens when decay would not
// change any vital, so sub-threshold elapsed time keeps accumulating.
func (s SimulationService) AdvanceTime(state State, now time.Time) (State, []DomainEvent, bool) {
	last, ok := decayReference(state)
	if !ok || !now.After(last) {
		return state.Clone(), nil, false
	}
	next := ApplyDecay(state, last, now)
	if !vitalsChanged(state, next) {
		return state.Clone(), nil, false
	}
	events := []DomainEvent{decayEvent(state, next, last, now)}
	next, unlocked := EvaluateAchievements(next)
	for _, a := range unlocked {
		events = append(events, achievementEvent(a, now))
	}
	next.UpdatedAt = now
	next.Version++
	return next, events, true
}

func decayEvent(before, after State, last, now time.Time) DomainEvent {
	return DomainEvent{
		Type:       EventDecayApplied,
		OccurredAt: now,
		Payload: map[string]any{
			"hours":        now.Sub(last).Hours(),
			"state_before": vitalsPayload(before),
			"state_after":  vitalsPayload(after),
		},
	}
}

func achievementEvent(a Achievement, now time.Time) DomainEvent {
	return DomainEvent{
		Type:       EventAchievementUnlocked,
		OccurredAt: now,
		Payload:    map[string]any{"achievement": string(a)},
	}
}

func decayReference(state State) (time.Time, bool) {
	if !state.UpdatedAt.IsZero() {
		return state.UpdatedAt, true
	}
	if state.LastInteraction != nil {
		return *state.LastInteraction, true
	}
	return time.Time{}, false
}

func vitalsChanged(a, b State) bool {
	return a.Health != b.Health || a.Energy != b.Energy || a.Happiness != b.Happiness ||
		a.Hunger != b.Hunger || a.Fatigue != b.Fatigue || a.Stress != b.Stress
}

func vitalsPayload(s State) map[string]any {
	return map[string]any{
		"health":    s.Health,
		"energy":    s.Energy,
		"happiness": s.Happiness,
		"hunger":    s.Hunger,
		"fatigue":   s.Fatigue,
		"stress":    s.Stress,
	}
}

func interactionDecision(in Interaction, level float64) map[string]any {
	out := map[string]any{
		"kind":          string(in.Kind),
		"success_level": level,
	}
	if in.SkillName != "" {
		out["skill_name"] = in.SkillName
		out["experience_points"] = in.ExperiencePoints
	}
	if in.RelationshipTarget != "" {
		out["relationship_target"] = in.RelationshipTarget
		out["relationship_quality"] = in.RelationshipQuality
	}
	return out
}
