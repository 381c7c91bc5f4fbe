package httpadapter

import (
	"encoding/json"
	"testing"
	"time"

	"unbounded/internal/app/creation"
	"unbounded/internal/app/interact"
	"unbounded/internal/app/ports"
	"unbounded/internal/app/replay"
	"unbounded/internal/app/status"
	"unbounded/internal/domain/character"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	state := character.NewState("c1", now)
	state.Skills["cooking"] = 40
	event := character.DomainEvent{
		Type:       character.EventInteractionApplied,
		OccurredAt: now,
		Payload:    map[string]any{"ok": true},
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "create",
			payload: creation.Response{Character: character.Profile{ID: "c1", Name: "Mira"}, State: state},
			want:    []string{"character", "state"},
			notWant: []string{"Character", "State"},
		},
		{
			name: "interact",
			payload: interact.Response{
				InteractionID: "i1",
				Result:        ports.InteractionResult{UpdatedState: state, Applied: true, Events: []character.DomainEvent{event}},
				Reply:         &character.Response{Content: "hi", Emotion: "happy"},
			},
			want:    []string{"interaction_id", "result", "reply", "replayed"},
			notWant: []string{"InteractionID", "Result", "Reply"},
		},
		{
			name:    "status",
			payload: status.Response{State: state, StatusFlags: []string{}, ServerTime: now},
			want:    []string{"state", "status_flags", "achievement_count", "needs", "projected", "server_time"},
			notWant: []string{"State", "StatusFlags", "ServerTime"},
		},
		{
			name:    "replay",
			payload: replay.Response{Events: []character.DomainEvent{event}, LatestVitals: replay.Vitals{Health: 90}},
			want:    []string{"events", "latest_vitals", "achievements"},
			notWant: []string{"Events", "LatestVitals"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(b))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(b))
				}
			}
			if tc.name == "status" {
				stateMap := asMap(got["state"])
				for _, key := range []string{"character_id", "personality_traits", "updated_at"} {
					if _, ok := stateMap[key]; !ok {
						t.Fatalf("expected nested key state.%s in %s", key, string(b))
					}
				}
				if _, ok := stateMap["CharacterID"]; ok {
					t.Fatalf("unexpected nested key state.CharacterID in %s", string(b))
				}
			}
			if tc.name == "interact" {
				result := asMap(got["result"])
				if _, ok := result["updated_state"]; !ok {
					t.Fatalf("expected nested key result.updated_state in %s", string(b))
				}
			}
		})
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
