package character

import "math"

// UpdateSkill grows a skill with diminishing returns: the closer to the cap, the
// less each experience point is worth.
func UpdateSkill(state State, skillName string, experiencePoints int) State {
	next := state.Clone()
	if skillName == "" {
		return next
	}
	current := next.Skills[skillName]
	levelFactor := 1.0 - float64(current)/SkillDiminishingDivisor
	// bound before converting; huge xp would overflow int
	gain := math.Floor(float64(experiencePoints) * levelFactor)
	gain = max(-MaxStat, min(MaxStat, gain))
	next.Skills[skillName] = clampStat(current + int(gain))
	return next
}

// UpdateRelationship nudges the score toward targetID by at most RelationshipDeltaScale.
func UpdateRelationship(state State, targetID string, interactionQuality float64) State {
	next := state.Clone()
	if targetID == "" {
		return next
	}
	current, ok := next.Relationships[targetID]
	if !ok {
		current = DefaultRelationship
	}
	quality := clampFloat(interactionQuality, -1, 1)
	delta := int(math.Round(quality * RelationshipDeltaScale))
	next.Relationships[targetID] = clampStat(current + delta)
	return next
}
