package stateview

import "unbounded/internal/domain/character"

const (
	FlagHungry    = "HUNGRY"
	FlagExhausted = "EXHAUSTED"
	FlagStressed  = "STRESSED"
	FlagLowEnergy = "LOW_ENERGY"
	FlagCritical  = "CRITICAL"
)

type View struct {
	State            character.State `json:"state"`
	StatusFlags      []string        `json:"status_flags"`
	DominantTrait    string          `json:"dominant_trait,omitempty"`
	AchievementCount int             `json:"achievement_count"`
}

func Enrich(state character.State) View {
	return View{
		State:            state,
		StatusFlags:      deriveStatusFlags(state),
		DominantTrait:    string(dominantTrait(state.Personality)),
		AchievementCount: len(state.Achievements),
	}
}

func deriveStatusFlags(state character.State) []string {
	flags := make([]string, 0, 5)
	if state.Hunger > character.NeedThreshold {
		flags = append(flags, FlagHungry)
	}
	if state.Fatigue > character.NeedThreshold {
		flags = append(flags, FlagExhausted)
	}
	if state.Stress > character.NeedThreshold {
		flags = append(flags, FlagStressed)
	}
	if state.Energy <= character.LowEnergyThreshold {
		flags = append(flags, FlagLowEnergy)
	}
	if state.Health <= character.CriticalHealthLevel {
		flags = append(flags, FlagCritical)
	}
	return flags
}

// dominantTrait picks the trait furthest from neutral; ties keep the first in
// OCEAN order and an all-neutral personality reports none.
func dominantTrait(p character.Personality) character.TraitName {
	var (
		best     character.TraitName
		bestDist int
	)
	for _, name := range character.TraitNames {
		t, _ := p.Get(name)
		dist := t.Value - character.DefaultTraitValue
		if dist < 0 {
			dist = -dist
		}
		if dist > bestDist {
			best, bestDist = name, dist
		}
	}
	return best
}
