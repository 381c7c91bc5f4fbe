package replay

import (
	"context"
	"errors"
	"strings"

	"unbounded/internal/app/access"
	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const DefaultLimit = 100

type UseCase struct {
	Events     ports.EventRepository
	Characters ports.CharacterRepository
}

// Execute returns the character's events oldest first, filtered by time window
// and type, plus the vitals and achievements they reconstruct.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.CharacterID = strings.TrimSpace(req.CharacterID)
	if req.CharacterID == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	if err := access.Authorize(ctx, u.Characters, req.CharacterID, req.OwnerID); err != nil {
		return Response{}, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	// Filters apply before the limit, so fetch everything and trim afterwards.
	events, err := u.Events.ListByCharacterID(ctx, req.CharacterID, 0)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return Response{}, err
	}
	events = chronological(events)
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	events = filterByType(events, strings.TrimSpace(req.EventType))
	if len(events) > limit {
		events = events[len(events)-limit:]
	}

	vitals, achievements := reconstruct(events)
	return Response{Events: events, LatestVitals: vitals, Achievements: achievements}, nil
}

func chronological(newestFirst []character.DomainEvent) []character.DomainEvent {
	out := make([]character.DomainEvent, len(newestFirst))
	for i, evt := range newestFirst {
		out[len(newestFirst)-1-i] = evt
	}
	return out
}

func filterByTimeWindow(events []character.DomainEvent, from, to int64) []character.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]character.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func filterByType(events []character.DomainEvent, eventType string) []character.DomainEvent {
	if eventType == "" {
		return events
	}
	out := make([]character.DomainEvent, 0, len(events))
	for _, evt := range events {
		if evt.Type == eventType {
			out = append(out, evt)
		}
	}
	return out
}

func reconstruct(events []character.DomainEvent) (Vitals, []string) {
	vitals := Vitals{}
	achievements := []string{}
	for _, evt := range events {
		if evt.Type == character.EventAchievementUnlocked {
			if id, ok := evt.Payload["achievement"].(string); ok && id != "" {
				achievements = append(achievements, id)
			}
			continue
		}
		after, ok := evt.Payload["state_after"].(map[string]any)
		if !ok {
			continue
		}
		vitals = Vitals{
			Health:    int(num(after["health"])),
			Energy:    int(num(after["energy"])),
			Happiness: int(num(after["happiness"])),
			Hunger:    int(num(after["hunger"])),
			Fatigue:   int(num(after["fatigue"])),
			Stress:    int(num(after["stress"])),
		}
	}
	return vitals, achievements
}

// num accepts both in-process payloads and JSON-decoded ones.
func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
