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
)

type CharacterStateRepo struct {
	db *gorm.DB
}

func NewCharacterStateRepo(db *gorm.DB) CharacterStateRepo {
	return CharacterStateRepo{db: db}
}

func (r CharacterStateRepo) GetByCharacterID(ctx context.Context, characterID string) (character.State, error) {
	var m model.CharacterState
	if err := getDBFromCtx(ctx, r.db).Where("character_id = ?", characterID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return character.State{}, ports.ErrNotFound
		}
		return character.State{}, err
	}
	return toDomainState(m)
}

func (r CharacterStateRepo) SaveWithVersion(ctx context.Context, state character.State, expectedVersion int64) error {
	m, err := toStateModel(state)
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		if err := db.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	updates := map[string]any{
		"health":           m.Health,
		"energy":           m.Energy,
		"happiness":        m.Happiness,
		"hunger":           m.Hunger,
		"fatigue":          m.Fatigue,
		"stress":           m.Stress,
		"last_interaction": m.LastInteraction,
		"personality":      m.Personality,
		"skills":           m.Skills,
		"inventory":        m.Inventory,
		"achievements":     m.Achievements,
		"relationships":    m.Relationships,
		"location":         m.Location,
		"activity":         m.Activity,
		"version":          m.Version,
		"updated_at":       m.UpdatedAt,
	}
	res := db.Model(&model.CharacterState{}).
		Where("character_id = ? AND version = ?", state.CharacterID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r CharacterStateRepo) ListCharacterIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	err := getDBFromCtx(ctx, r.db).
		Model(&model.CharacterState{}).
		Order("character_id").
		Pluck("character_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func toStateModel(s character.State) (model.CharacterState, error) {
	enc := jsonColumns{}
	m := model.CharacterState{
		CharacterID:     s.CharacterID,
		Health:          int32(s.Health),
		Energy:          int32(s.Energy),
		Happiness:       int32(s.Happiness),
		Hunger:          int32(s.Hunger),
		Fatigue:         int32(s.Fatigue),
		Stress:          int32(s.Stress),
		LastInteraction: s.LastInteraction,
		Personality:     enc.encode(s.Personality),
		Skills:          enc.encode(orEmptyMap(s.Skills)),
		Inventory:       enc.encode(orEmptySlice(s.Inventory)),
		Achievements:    enc.encode(orEmptySlice(s.Achievements)),
		Relationships:   enc.encode(orEmptyMap(s.Relationships)),
		Location:        s.Location,
		Activity:        s.Activity,
		Version:         s.Version,
		UpdatedAt:       s.UpdatedAt,
	}
	if enc.err != nil {
		return model.CharacterState{}, fmt.Errorf("encode state %s: %w", s.CharacterID, enc.err)
	}
	return m, nil
}

func toDomainState(m model.CharacterState) (character.State, error) {
	s := character.State{
		CharacterID:     m.CharacterID,
		Health:          int(m.Health),
		Energy:          int(m.Energy),
		Happiness:       int(m.Happiness),
		Hunger:          int(m.Hunger),
		Fatigue:         int(m.Fatigue),
		Stress:          int(m.Stress),
		LastInteraction: m.LastInteraction,
		Location:        m.Location,
		Activity:        m.Activity,
		Version:         m.Version,
		UpdatedAt:       m.UpdatedAt,
	}
	dec := jsonColumns{}
	dec.decode(m.Personality, &s.Personality)
	dec.decode(m.Skills, &s.Skills)
	dec.decode(m.Inventory, &s.Inventory)
	dec.decode(m.Achievements, &s.Achievements)
	dec.decode(m.Relationships, &s.Relationships)
	if dec.err != nil {
		return character.State{}, fmt.Errorf("decode state %s: %w", m.CharacterID, dec.err)
	}
	// Clone normalises nil collections from empty columns.
	return s.Clone(), nil
}

// jsonColumns keeps the first encode/decode error so a row converts in one pass.
type jsonColumns struct {
	err error
}

func (j *jsonColumns) encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil && j.err == nil {
		j.err = err
	}
	return string(b)
}

func (j *jsonColumns) decode(raw string, v any) {
	if raw == "" || j.err != nil {
		return
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		j.err = err
	}
}

func orEmptyMap(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

func orEmptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
