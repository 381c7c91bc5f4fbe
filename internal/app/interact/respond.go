package interact

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

// generateReply asks the responder for an in-character reply when the
// interaction carries something to reply to. Responder failures degrade to the
// fallback reply; only repository errors abort the interaction.
func (u UseCase) generateReply(ctx context.Context, req Request) (*character.Response, error) {
	if u.Responder == nil || !wantsReply(req.Interaction) {
		return nil, nil
	}

	state, err := u.StateRepo.GetByCharacterID(ctx, req.CharacterID)
	if err != nil {
		return nil, err
	}
	var profile character.Profile
	if u.Characters != nil {
		profile, err = u.Characters.Get(ctx, req.CharacterID)
		if err != nil {
			return nil, err
		}
	}
	limit := u.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	history, err := u.InteractionRepo.ListByCharacterID(ctx, req.CharacterID, limit)
	if err != nil {
		return nil, err
	}

	influence := map[character.TraitName]float64{}
	if pctx, ok := character.PersonalityContextFor(req.Interaction.Kind); ok {
		influence = character.Influence(state.Personality, pctx)
	}

	resp, err := u.Responder.Generate(ctx, ports.ResponseRequest{
		Profile:   profile,
		State:     state,
		Kind:      req.Interaction.Kind,
		Content:   req.Interaction.Content,
		Influence: influence,
		History:   history,
	})
	if err != nil {
		hlog.CtxWarnf(ctx, "generate reply for character %s: %v; using fallback", req.CharacterID, err)
		if u.Metrics != nil {
			u.Metrics.RecordFallback()
		}
		resp = character.FallbackResponse()
	}
	return &resp, nil
}

func wantsReply(in character.Interaction) bool {
	return in.Kind == character.InteractionChat || in.Content != ""
}
