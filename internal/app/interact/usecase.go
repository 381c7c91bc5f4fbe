package interact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"unbounded/internal/app/access"
	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

var ErrInvalidRequest = errors.New("invalid interaction request")

const (
	DefaultLockTTL      = 30 * time.Second
	DefaultHistoryLimit = 10
)

var tracer = otel.Tracer("unbounded/internal/app/interact")

type UseCase struct {
	TxManager       ports.TxManager
	StateRepo       ports.CharacterStateRepository
	Characters      ports.CharacterRepository
	InteractionRepo ports.InteractionRepository
	EventRepo       ports.EventRepository
	Locker          ports.CharacterLocker
	Responder       ports.ResponseGenerator
	IDs             ports.IDGenerator
	Metrics         ports.InteractionMetrics
	Sim             character.SimulationService
	Now             func() time.Time
	LockTTL         time.Duration
	HistoryLimit    int
}

func (u UseCase) Execute(ctx context.Context, req Request) (out Response, err error) {
	req.CharacterID = strings.TrimSpace(req.CharacterID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.Interaction.Kind = character.InteractionKind(strings.ToLower(strings.TrimSpace(string(req.Interaction.Kind))))
	if req.CharacterID == "" || req.Interaction.Kind == "" {
		return Response{}, ErrInvalidRequest
	}

	ctx, span := tracer.Start(ctx, "interact.Execute")
	span.SetAttributes(
		attribute.String("character.id", req.CharacterID),
		attribute.String("interaction.kind", string(req.Interaction.Kind)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := access.Authorize(ctx, u.Characters, req.CharacterID, req.OwnerID); err != nil {
		return Response{}, err
	}

	if u.Locker != nil {
		ttl := u.LockTTL
		if ttl <= 0 {
			ttl = DefaultLockTTL
		}
		release, err := u.Locker.Acquire(ctx, req.CharacterID, ttl)
		if err != nil {
			return Response{}, err
		}
		defer func() {
			if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
				hlog.CtxWarnf(ctx, "release lock for character %s: %v", req.CharacterID, rerr)
			}
		}()
	}

	if replay, ok, err := u.replayIdempotent(ctx, req); err != nil {
		return Response{}, err
	} else if ok {
		span.SetAttributes(attribute.Bool("interaction.replayed", true))
		return replay, nil
	}

	reply, err := u.generateReply(ctx, req)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if replay, ok, err := u.replayIdempotent(txCtx, req); err != nil {
			return err
		} else if ok {
			out = replay
			return nil
		}

		state, err := u.StateRepo.GetByCharacterID(txCtx, req.CharacterID)
		if err != nil {
			return err
		}
		now := nowFn()
		result, err := u.Sim.Step(state, req.Interaction, now, reply)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		if err := u.StateRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}

		for i := range result.Events {
			if result.Events[i].Payload == nil {
				result.Events[i].Payload = map[string]any{}
			}
			result.Events[i].Payload["character_id"] = req.CharacterID
		}

		record := ports.InteractionRecord{
			ID:             u.newID(req.CharacterID, now),
			CharacterID:    req.CharacterID,
			IdempotencyKey: req.IdempotencyKey,
			Kind:           string(req.Interaction.Kind),
			Content:        req.Interaction.Content,
			SuccessLevel:   successLevel(req.Interaction),
			Response:       reply,
			Result: ports.InteractionResult{
				UpdatedState: result.UpdatedState,
				Applied:      result.Applied,
				Influence:    result.Influence,
				SuccessScore: result.SuccessScore,
				Unlocked:     result.Unlocked,
				Events:       result.Events,
			},
			OccurredAt: now,
		}
		if err := u.InteractionRepo.Save(txCtx, record); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.CharacterID, result.Events); err != nil {
			return err
		}

		out = Response{InteractionID: record.ID, Result: record.Result, Reply: reply}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil && !out.Replayed {
		u.Metrics.RecordSuccess(req.Interaction.Kind, out.Result.Applied)
	}
	if len(out.Result.Unlocked) > 0 {
		hlog.CtxInfof(ctx, "character %s unlocked %v", req.CharacterID, out.Result.Unlocked)
	}
	return out, nil
}

func (u UseCase) replayIdempotent(ctx context.Context, req Request) (Response, bool, error) {
	if req.IdempotencyKey == "" {
		return Response{}, false, nil
	}
	rec, err := u.InteractionRepo.GetByIdempotencyKey(ctx, req.CharacterID, req.IdempotencyKey)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return Response{}, false, nil
		}
		return Response{}, false, err
	}
	if rec == nil {
		return Response{}, false, nil
	}
	return Response{InteractionID: rec.ID, Result: rec.Result, Reply: rec.Response, Replayed: true}, true, nil
}

func (u UseCase) newID(characterID string, now time.Time) string {
	if u.IDs != nil {
		return u.IDs.NewID()
	}
	return fmt.Sprintf("%s-%d", characterID, now.UnixNano())
}

func successLevel(in character.Interaction) float64 {
	if in.SuccessLevel == nil {
		return 1
	}
	return *in.SuccessLevel
}
