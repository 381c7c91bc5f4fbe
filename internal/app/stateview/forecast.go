package stateview

import "unbounded/internal/domain/character"

// NeedForecast estimates how long each need stays below the drain threshold if
// nothing else happens. Zero means the need is already draining.
type NeedForecast struct {
	HoursUntilHungry    float64  `json:"hours_until_hungry"`
	HoursUntilExhausted float64  `json:"hours_until_exhausted"`
	HoursUntilStressed  float64  `json:"hours_until_stressed"`
	Draining            bool     `json:"draining"`
	Causes              []string `json:"causes"`
}

func EstimateNeeds(state character.State) NeedForecast {
	out := NeedForecast{
		HoursUntilHungry:    hoursUntilThreshold(state.Hunger, character.HungerRisePerHour),
		HoursUntilExhausted: hoursUntilThreshold(state.Fatigue, character.FatigueRisePerHour),
		HoursUntilStressed:  hoursUntilThreshold(state.Stress, character.StressRisePerHour),
		Causes:              make([]string, 0, 3),
	}
	if out.HoursUntilHungry == 0 {
		out.Causes = append(out.Causes, "HUNGER_DRAIN")
	}
	if out.HoursUntilExhausted == 0 {
		out.Causes = append(out.Causes, "FATIGUE_DRAIN")
	}
	if out.HoursUntilStressed == 0 {
		out.Causes = append(out.Causes, "STRESS_DRAIN")
	}
	out.Draining = len(out.Causes) > 0
	return out
}

func hoursUntilThreshold(value, ratePerHour int) float64 {
	gap := character.NeedThreshold + 1 - value
	if gap <= 0 {
		return 0
	}
	return float64(gap) / float64(ratePerHour)
}
