package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"unbounded/internal/adapter/repo/gorm/model"
	"unbounded/internal/domain/character"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, characterID string, events []character.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.DomainEvent, 0, len(events))
	for _, e := range events {
		payload := e.Payload
		if payload == nil {
			payload = map[string]any{}
		}
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", e.Type, err)
		}
		rows = append(rows, model.DomainEvent{
			CharacterID: characterID,
			Type:        e.Type,
			OccurredAt:  e.OccurredAt,
			Payload:     string(b),
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

// ListByCharacterID returns newest first; events sharing a timestamp keep
// their append order reversed via the serial id.
func (r EventRepo) ListByCharacterID(ctx context.Context, characterID string, limit int) ([]character.DomainEvent, error) {
	rows := []model.DomainEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.DomainEvent{CharacterID: characterID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]character.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal([]byte(row.Payload), &payload)
		}
		out = append(out, character.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
