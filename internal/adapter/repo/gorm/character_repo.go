package gormrepo

import (
	"context"
	"errors"

	"unbounded/internal/adapter/repo/gorm/model"
	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"

	"gorm.io/gorm"
)

type CharacterRepo struct {
	db *gorm.DB
}

func NewCharacterRepo(db *gorm.DB) CharacterRepo {
	return CharacterRepo{db: db}
}

func (r CharacterRepo) Create(ctx context.Context, profile character.Profile) error {
	row := model.Character{
		ID:          profile.ID,
		OwnerID:     profile.OwnerID,
		Name:        profile.Name,
		Description: profile.Description,
		Backstory:   profile.Backstory,
		CreatedAt:   profile.CreatedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r CharacterRepo) Get(ctx context.Context, characterID string) (character.Profile, error) {
	var row model.Character
	if err := getDBFromCtx(ctx, r.db).Where(&model.Character{ID: characterID}).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return character.Profile{}, ports.ErrNotFound
		}
		return character.Profile{}, err
	}
	return toProfile(row), nil
}

func (r CharacterRepo) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]character.Profile, error) {
	q := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []model.Character
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]character.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, toProfile(row))
	}
	return out, nil
}

func toProfile(row model.Character) character.Profile {
	return character.Profile{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Backstory:   row.Backstory,
		CreatedAt:   row.CreatedAt,
	}
}
