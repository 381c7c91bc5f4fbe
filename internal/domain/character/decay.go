package character

import (
	"math"
	"time"
)

// ApplyDecay drifts needs upward for the time elapsed between lastUpdate and now.
// Secondary drains read the already-updated needs; several thresholds stack.
// A non-positive interval leaves the state untouched apart from clamping.
func ApplyDecay(state State, lastUpdate, now time.Time) State {
	next := state.Clone()
	hours := now.Sub(lastUpdate).Hours()
	if hours <= 0 {
		next.clampVitals()
		return next
	}

	next.Hunger = min(MaxStat, next.Hunger+perHour(HungerRisePerHour, hours))
	next.Fatigue = min(MaxStat, next.Fatigue+perHour(FatigueRisePerHour, hours))
	next.Stress = min(MaxStat, next.Stress+perHour(StressRisePerHour, hours))

	if next.Hunger > NeedThreshold {
		next.Energy = max(MinStat, next.Energy-perHour(HungerEnergyDrainPerHour, hours))
		next.Happiness = max(MinStat, next.Happiness-perHour(HungerHappinessDrainPerHour, hours))
	}
	if next.Fatigue > NeedThreshold {
		next.Energy = max(MinStat, next.Energy-perHour(FatigueEnergyDrainPerHour, hours))
		next.Happiness = max(MinStat, next.Happiness-perHour(FatigueHappinessDrainPerHour, hours))
	}
	if next.Stress > NeedThreshold {
		next.Happiness = max(MinStat, next.Happiness-perHour(StressHappinessDrainPerHour, hours))
	}

	next.clampVitals()
	return next
}

func perHour(rate int, hours float64) int {
	return int(math.Floor(float64(rate) * hours))
}
