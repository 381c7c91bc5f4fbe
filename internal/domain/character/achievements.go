package character

type achievementRule struct {
	ID        Achievement
	Satisfied func(State) bool
}

var achievementRules = []achievementRule{
	{AchievementMasterChef, func(s State) bool { return s.Skills["cooking"] >= 90 }},
	{AchievementSocialButterfly, func(s State) bool { return countAtLeast(s.Relationships, 80) >= 5 }},
	{AchievementWellBalanced, func(s State) bool { return s.Health >= 70 && s.Happiness >= 70 && s.Energy >= 70 }},
	{AchievementSkillCollector, func(s State) bool { return countAtLeast(s.Skills, 50) >= 5 }},
	{AchievementIronWill, func(s State) bool { return s.Stress <= 10 && s.Happiness >= 90 }},
}

// EvaluateAchievements awards every satisfied achievement not already held.
// Awards are never revoked, so repeated calls on the same state are stable.
func EvaluateAchievements(state State) (State, []Achievement) {
	next := state.Clone()
	var unlocked []Achievement
	for _, rule := range achievementRules {
		if next.HasAchievement(rule.ID) || !rule.Satisfied(next) {
			continue
		}
		next.Achievements = append(next.Achievements, rule.ID)
		unlocked = append(unlocked, rule.ID)
	}
	return next, unlocked
}

func countAtLeast(values map[string]int, threshold int) int {
	n := 0
	for _, v := range values {
		if v >= threshold {
			n++
		}
	}
	return n
}
