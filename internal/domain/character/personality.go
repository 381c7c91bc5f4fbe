package character

import "math"

// Influence scales each weighted trait by its distance from neutral. Insignificant
// influences are dropped, so an all-neutral personality yields an empty map.
func Influence(p Personality, ctx PersonalityContext) map[TraitName]float64 {
	out := map[TraitName]float64{}
	for _, w := range traitInfluenceTable[ctx] {
		trait, _ := p.Get(w.Trait)
		scaled := w.Weight * float64(trait.Value-DefaultTraitValue) / float64(DefaultTraitValue)
		if math.Abs(scaled) > MinSignificantInfluence {
			out[w.Trait] = scaled
		}
	}
	return out
}

// UpdateTraits credits development points to the traits a context exercises and
// converts every full ledger of points into one trait level.
func UpdateTraits(p Personality, ctx PersonalityContext, successScore float64) Personality {
	points := int(math.Floor(clampFloat(successScore, 0, 1) * TraitPointsPerSuccess))
	next := p
	for _, name := range traitDevelopmentTable[ctx] {
		t := next.trait(name)
		t.DevelopmentPoints += points
		for t.DevelopmentPoints >= TraitPointsPerLevel {
			t.Value = clampStat(t.Value + 1)
			t.DevelopmentPoints -= TraitPointsPerLevel
		}
	}
	return next
}
