package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"unbounded/internal/app/creation"
	"unbounded/internal/app/history"
	"unbounded/internal/app/interact"
	"unbounded/internal/app/ports"
	"unbounded/internal/app/replay"
	"unbounded/internal/app/roster"
	"unbounded/internal/app/status"
	"unbounded/internal/domain/character"
)

const (
	userIDHeader         = "X-User-ID"
	idempotencyKeyHeader = "Idempotency-Key"
)

type Handler struct {
	CreateUC   creation.UseCase
	StatusUC   status.UseCase
	InteractUC interact.UseCase
	HistoryUC  history.UseCase
	ReplayUC   replay.UseCase
	RosterUC   roster.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	s.POST("/api/characters", h.create)
	s.GET("/api/characters", h.list)
	chars := s.Group("/api/characters")
	chars.GET("/:id/state", h.status)
	chars.POST("/:id/interactions", h.interact)
	chars.GET("/:id/interactions", h.history)
	chars.GET("/:id/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type createRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Backstory   string         `json:"backstory"`
	Traits      map[string]int `json:"personality_traits,omitempty"`
}

type interactionRequest struct {
	IdempotencyKey      string   `json:"idempotency_key"`
	Kind                string   `json:"kind"`
	SuccessLevel        *float64 `json:"success_level,omitempty"`
	SkillName           string   `json:"skill_name,omitempty"`
	ExperiencePoints    int      `json:"experience_points,omitempty"`
	RelationshipTarget  string   `json:"relationship_target,omitempty"`
	RelationshipQuality float64  `json:"relationship_quality,omitempty"`
	Content             string   `json:"content,omitempty"`
}

func (h Handler) create(c context.Context, ctx *app.RequestContext) {
	var body createRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CreateUC.Execute(c, creation.Request{
		OwnerID:     ownerID(ctx),
		Name:        body.Name,
		Description: body.Description,
		Backstory:   body.Backstory,
		Traits:      body.Traits,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) list(c context.Context, ctx *app.RequestContext) {
	offset, err := queryInt(ctx, "offset")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "offset must be an integer")
		return
	}
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "limit must be an integer")
		return
	}
	resp, err := h.RosterUC.Execute(c, roster.Request{
		OwnerID: ownerID(ctx),
		Offset:  int(offset),
		Limit:   int(limit),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{
		CharacterID: ctx.Param("id"),
		OwnerID:     ownerID(ctx),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) interact(c context.Context, ctx *app.RequestContext) {
	var body interactionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	key := body.IdempotencyKey
	if key == "" {
		key = strings.TrimSpace(string(ctx.GetHeader(idempotencyKeyHeader)))
	}

	resp, err := h.InteractUC.Execute(c, interact.Request{
		CharacterID:    ctx.Param("id"),
		OwnerID:        ownerID(ctx),
		IdempotencyKey: key,
		Interaction: character.Interaction{
			Kind:                character.InteractionKind(body.Kind),
			SuccessLevel:        body.SuccessLevel,
			SkillName:           body.SkillName,
			ExperiencePoints:    body.ExperiencePoints,
			RelationshipTarget:  body.RelationshipTarget,
			RelationshipQuality: body.RelationshipQuality,
			Content:             body.Content,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "limit must be an integer")
		return
	}
	resp, err := h.HistoryUC.Execute(c, history.Request{
		CharacterID: ctx.Param("id"),
		OwnerID:     ownerID(ctx),
		Limit:       int(limit),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	var params [3]int64
	for i, key := range []string{"limit", "occurred_from", "occurred_to"} {
		v, err := queryInt(ctx, key)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", key+" must be an integer")
			return
		}
		params[i] = v
	}
	limit, occurredFrom, occurredTo := params[0], params[1], params[2]
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		CharacterID:  ctx.Param("id"),
		OwnerID:      ownerID(ctx),
		Limit:        int(limit),
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
		EventType:    ctx.Query("event_type"),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func ownerID(ctx *app.RequestContext) string {
	return strings.TrimSpace(string(ctx.GetHeader(userIDHeader)))
}

func queryInt(ctx *app.RequestContext, key string) (int64, error) {
	raw := strings.TrimSpace(ctx.Query(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, creation.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest),
		errors.Is(err, interact.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, roster.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, character.ErrInvalidInteraction):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrForbidden):
		writeErrorBody(ctx, consts.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrLocked):
		writeErrorBody(ctx, consts.StatusConflict, "character_locked", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
