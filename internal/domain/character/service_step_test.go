package character

import (
	"errors"
	"testing"
	"time"
)

func TestStep_DecayThenInteraction(t *testing.T) {
	svc := SimulationService{}
	s := baseState()
	now := s.UpdatedAt.Add(2 * time.Hour)

	out, err := svc.Step(s, Interaction{Kind: InteractionFeed}, now, nil)
	if err != nil {
		t.Fatalf("step error: %v", err)
	}
	st := out.UpdatedState
	// decay: hunger 10, fatigue 8, stress 6; feed: hunger 0
	if st.Hunger != 0 || st.Fatigue != 8 || st.Stress != 6 {
		t.Fatalf("needs = (%d,%d,%d), want (0,8,6)", st.Hunger, st.Fatigue, st.Stress)
	}
	if st.Version != s.Version+1 {
		t.Fatalf("version = %d, want %d", st.Version, s.Version+1)
	}
	if !st.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at = %v, want %v", st.UpdatedAt, now)
	}
	if !out.Applied {
		t.Fatalf("expected applied")
	}
	if len(out.Events) < 2 || out.Events[0].Type != EventDecayApplied || out.Events[1].Type != EventInteractionApplied {
		t.Fatalf("unexpected events: %+v", out.Events)
	}
}

func TestStep_ProgressionPersonalityAndAchievements(t *testing.T) {
	svc := SimulationService{}
	s := baseState()
	s.Skills["cooking"] = 88
	s.Personality.Extraversion.Value = 100
	level := 1.0

	out, err := svc.Step(s, Interaction{
		Kind:                InteractionSocialize,
		SuccessLevel:        &level,
		SkillName:           "cooking",
		ExperiencePoints:    4,
		RelationshipTarget:  "user123",
		RelationshipQuality: 1,
	}, s.UpdatedAt, nil)
	if err != nil {
		t.Fatalf("step error: %v", err)
	}
	st := out.UpdatedState
	if st.Skills["cooking"] != 90 {
		t.Fatalf("cooking = %d, want 90", st.Skills["cooking"])
	}
	if st.Relationships["user123"] != 55 {
		t.Fatalf("relationship = %d, want 55", st.Relationships["user123"])
	}
	if st.Personality.Extraversion.DevelopmentPoints != 10 || st.Personality.Openness.DevelopmentPoints != 10 {
		t.Fatalf("social traits not credited: %+v", st.Personality)
	}
	if got := out.Influence[TraitExtraversion]; got < 0.39 || got > 0.41 {
		t.Fatalf("extraversion influence = %v, want 0.4", got)
	}
	if !st.HasAchievement(AchievementMasterChef) {
		t.Fatalf("expected master_chef, got %v", st.Achievements)
	}
	found := false
	for _, e := range out.Events {
		if e.Type == EventAchievementUnlocked && e.Payload["achievement"] == string(AchievementMasterChef) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected achievement event, got %+v", out.Events)
	}
}

func TestStep_ResponseDrivesSuccessScoreAndEffects(t *testing.T) {
	svc := SimulationService{}
	s := baseState()
	s.Happiness = 50
	resp := &Response{Content: "hi", Emotion: "happy", Effects: Effects{VitalHappiness: 5, VitalHealth: 1}}

	out, err := svc.Step(s, Interaction{Kind: InteractionChat, Content: "hello"}, s.UpdatedAt, resp)
	if err != nil {
		t.Fatalf("step error: %v", err)
	}
	if out.SuccessScore != 1.0 {
		t.Fatalf("success score = %v, want 1", out.SuccessScore)
	}
	if out.UpdatedState.Happiness != 55 {
		t.Fatalf("happiness = %d, want 55", out.UpdatedState.Happiness)
	}
	if out.UpdatedState.Personality.Agreeableness.DevelopmentPoints != 10 {
		t.Fatalf("chat should credit agreeableness, got %+v", out.UpdatedState.Personality.Agreeableness)
	}
}

func TestStep_UnknownKindOnlyDecays(t *testing.T) {
	svc := SimulationService{}
	s := baseState()
	now := s.UpdatedAt.Add(time.Hour)

	out, err := svc.Step(s, Interaction{Kind: "juggle", SkillName: "cooking", ExperiencePoints: 10}, now, nil)
	if err != nil {
		t.Fatalf("step error: %v", err)
	}
	if out.Applied {
		t.Fatalf("unknown kind reported as applied")
	}
	if out.UpdatedState.LastInteraction != nil {
		t.Fatalf("unknown kind stamped last_interaction")
	}
	if out.UpdatedState.Skills["cooking"] != 50 {
		t.Fatalf("unknown kind progressed skills")
	}
	if out.UpdatedState.Hunger != 5 {
		t.Fatalf("expected time decay to still apply, hunger=%d", out.UpdatedState.Hunger)
	}
}

func TestStep_RejectsEmptyKind(t *testing.T) {
	_, err := SimulationService{}.Step(baseState(), Interaction{}, time.Now(), nil)
	if !errors.Is(err, ErrInvalidInteraction) {
		t.Fatalf("expected ErrInvalidInteraction, got %v", err)
	}
}

func TestDecay_ProjectsWithoutVersionBump(t *testing.T) {
	s := baseState()
	out, changed := SimulationService{}.Decay(s, s.UpdatedAt.Add(3*time.Hour))
	if !changed || out.Hunger != 15 {
		t.Fatalf("expected projected hunger 15, got %d (changed=%v)", out.Hunger, changed)
	}
	if out.Version != s.Version {
		t.Fatalf("projection must not bump version")
	}
}

func TestSuccessScore(t *testing.T) {
	cases := []struct {
		resp Response
		want float64
	}{
		{Response{Emotion: "happy"}, 0.5},
		{Response{Emotion: "Content", Effects: Effects{}}, 0.4},
		{Response{Emotion: "happy", Effects: Effects{VitalHappiness: 5}}, 1.0},
		{Response{Emotion: "weird", Effects: Effects{VitalHappiness: 3, VitalStress: -2}}, (0.5 + 0.5) / 2},
		{Response{Emotion: "neutral", Effects: NeutralEffects()}, 0.5},
		{FallbackResponse(), 0.15},
	}
	for _, tc := range cases {
		if got := SuccessScore(tc.resp); got < tc.want-1e-9 || got > tc.want+1e-9 {
			t.Fatalf("SuccessScore(%+v) = %v, want %v", tc.resp, got, tc.want)
		}
	}
}

func TestAdvanceTime_PersistsDecay(t *testing.T) {
	s := baseState()
	now := s.UpdatedAt.Add(2 * time.Hour)

	out, events, changed := SimulationService{}.AdvanceTime(s, now)
	if !changed {
		t.Fatalf("expected change after two hours")
	}
	if out.Hunger != 10 || out.Version != s.Version+1 || !out.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected state: hunger=%d version=%d updated_at=%v", out.Hunger, out.Version, out.UpdatedAt)
	}
	if len(events) == 0 || events[0].Type != EventDecayApplied {
		t.Fatalf("expected decay event first, got %+v", events)
	}
}

func TestAdvanceTime_KeepsAccumulatingBelowOnePoint(t *testing.T) {
	s := baseState()
	out, events, changed := SimulationService{}.AdvanceTime(s, s.UpdatedAt.Add(10*time.Minute))
	if changed || len(events) != 0 {
		t.Fatalf("ten minutes should not move any vital")
	}
	if !out.UpdatedAt.Equal(s.UpdatedAt) || out.Version != s.Version {
		t.Fatalf("unchanged state must keep its clock and version")
	}
}
