package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"unbounded/internal/adapter/repo/gorm/model"
	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) InteractionRepo {
	return InteractionRepo{db: db}
}

func (r InteractionRepo) GetByIdempotencyKey(ctx context.Context, characterID, key string) (*ports.InteractionRecord, error) {
	if key == "" {
		return nil, ports.ErrNotFound
	}
	var m model.Interaction
	err := getDBFromCtx(ctx, r.db).
		Where(&model.Interaction{CharacterID: characterID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	rec, err := decodeInteraction(m)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r InteractionRepo) Save(ctx context.Context, record ports.InteractionRecord) error {
	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("encode interaction result: %w", err)
	}
	m := model.Interaction{
		ID:             record.ID,
		CharacterID:    record.CharacterID,
		IdempotencyKey: record.IdempotencyKey,
		Kind:           record.Kind,
		Content:        record.Content,
		SuccessLevel:   record.SuccessLevel,
		Result:         string(resultJSON),
		OccurredAt:     record.OccurredAt,
	}
	if record.Response != nil {
		b, err := json.Marshal(record.Response)
		if err != nil {
			return fmt.Errorf("encode interaction response: %w", err)
		}
		raw := string(b)
		m.Response = &raw
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r InteractionRepo) ListByCharacterID(ctx context.Context, characterID string, limit int) ([]ports.InteractionRecord, error) {
	rows := []model.Interaction{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.Interaction{CharacterID: characterID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.InteractionRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeInteraction(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeInteraction(m model.Interaction) (ports.InteractionRecord, error) {
	rec := ports.InteractionRecord{
		ID:             m.ID,
		CharacterID:    m.CharacterID,
		IdempotencyKey: m.IdempotencyKey,
		Kind:           m.Kind,
		Content:        m.Content,
		SuccessLevel:   m.SuccessLevel,
		OccurredAt:     m.OccurredAt,
	}
	if err := json.Unmarshal([]byte(m.Result), &rec.Result); err != nil {
		return ports.InteractionRecord{}, fmt.Errorf("decode interaction %s: %w", m.ID, err)
	}
	if m.Response != nil && *m.Response != "" {
		var resp character.Response
		if err := json.Unmarshal([]byte(*m.Response), &resp); err != nil {
			return ports.InteractionRecord{}, fmt.Errorf("decode interaction %s response: %w", m.ID, err)
		}
		rec.Response = &resp
	}
	return rec, nil
}
