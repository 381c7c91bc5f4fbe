package character

import "time"

func NewState(characterID string, now time.Time) State {
	return State{
		CharacterID:   characterID,
		Health:        MaxStat,
		Energy:        MaxStat,
		Happiness:     MaxStat,
		Hunger:        MinStat,
		Fatigue:       MinStat,
		Stress:        MinStat,
		Personality:   NewPersonality(),
		Skills:        map[string]int{},
		Inventory:     []string{},
		Achievements:  []Achievement{},
		Relationships: map[string]int{},
		Location:      DefaultLocation,
		Activity:      DefaultActivity,
		Version:       1,
		UpdatedAt:     now,
	}
}

func NewPersonality() Personality {
	neutral := Trait{Value: DefaultTraitValue}
	return Personality{
		Openness:          neutral,
		Conscientiousness: neutral,
		Extraversion:      neutral,
		Agreeableness:     neutral,
		Neuroticism:       neutral,
	}
}

// Clone returns a deep copy so callers can mutate the result freely.
// Nil collections come back empty, which removes every "missing field" branch downstream.
func (s State) Clone() State {
	next := s
	next.Skills = make(map[string]int, len(s.Skills))
	for k, v := range s.Skills {
		next.Skills[k] = v
	}
	next.Relationships = make(map[string]int, len(s.Relationships))
	for k, v := range s.Relationships {
		next.Relationships[k] = v
	}
	next.Inventory = append(make([]string, 0, len(s.Inventory)), s.Inventory...)
	next.Achievements = append(make([]Achievement, 0, len(s.Achievements)), s.Achievements...)
	if s.LastInteraction != nil {
		at := *s.LastInteraction
		next.LastInteraction = &at
	}
	return next
}

func (s State) HasAchievement(a Achievement) bool {
	for _, got := range s.Achievements {
		if got == a {
			return true
		}
	}
	return false
}

func (s *State) AddItem(item string) {
	if item == "" {
		return
	}
	s.Inventory = append(s.Inventory, item)
}

func (s *State) clampVitals() {
	s.Health = clampStat(s.Health)
	s.Energy = clampStat(s.Energy)
	s.Happiness = clampStat(s.Happiness)
	s.Hunger = clampStat(s.Hunger)
	s.Fatigue = clampStat(s.Fatigue)
	s.Stress = clampStat(s.Stress)
}

func (p Personality) Get(name TraitName) (Trait, bool) {
	ptr := (&p).trait(name)
	if ptr == nil {
		return Trait{}, false
	}
	return *ptr, true
}

func (p *Personality) trait(name TraitName) *Trait {
	switch name {
	case TraitOpenness:
		return &p.Openness
	case TraitConscientiousness:
		return &p.Conscientiousness
	case TraitExtraversion:
		return &p.Extraversion
	case TraitAgreeableness:
		return &p.Agreeableness
	case TraitNeuroticism:
		return &p.Neuroticism
	default:
		return nil
	}
}

func clampStat(v int) int {
	return clampInt(v, MinStat, MaxStat)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	// NaN fails both comparisons; treat it as the lower bound.
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WithValue returns a copy of p with the named trait set to value.
func (p Personality) WithValue(name TraitName, value int) (Personality, bool) {
	t := p.trait(name)
	if t == nil {
		return p, false
	}
	t.Value = clampStat(value)
	return p, true
}
