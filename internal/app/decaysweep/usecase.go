package decaysweep

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"golang.org/x/sync/errgroup"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

const (
	DefaultConcurrency = 8
	DefaultMinIdle     = time.Hour
	lockTTL            = 10 * time.Second
)

type Report struct {
	Scanned int `json:"scanned"`
	Decayed int `json:"decayed"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// UseCase persists decay for characters idle longer than MinIdle. Frequent
// sweeps would floor away partial hours, so recently touched characters are
// left for their next interaction.
type UseCase struct {
	TxManager   ports.TxManager
	StateRepo   ports.CharacterStateRepository
	EventRepo   ports.EventRepository
	Locker      ports.CharacterLocker
	Sim         character.SimulationService
	Now         func() time.Time
	Concurrency int
	MinIdle     time.Duration
}

func (u UseCase) Execute(ctx context.Context) (Report, error) {
	ids, err := u.StateRepo.ListCharacterIDs(ctx)
	if err != nil {
		return Report{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()
	limit := u.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	minIdle := u.MinIdle
	if minIdle <= 0 {
		minIdle = DefaultMinIdle
	}

	var decayed, skipped, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			changed, err := u.sweepOne(gctx, id, now, minIdle)
			switch {
			case err == nil && changed:
				decayed.Add(1)
			case err == nil, errors.Is(err, ports.ErrLocked), errors.Is(err, ports.ErrConflict):
				skipped.Add(1)
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return err
			default:
				failed.Add(1)
				hlog.CtxErrorf(gctx, "decay sweep for character %s: %v", id, err)
			}
			return nil
		})
	}
	err = g.Wait()

	report := Report{
		Scanned: len(ids),
		Decayed: int(decayed.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}
	hlog.CtxInfof(ctx, "decay sweep: scanned=%d decayed=%d skipped=%d failed=%d",
		report.Scanned, report.Decayed, report.Skipped, report.Failed)
	return report, err
}

func (u UseCase) sweepOne(ctx context.Context, characterID string, now time.Time, minIdle time.Duration) (bool, error) {
	if u.Locker != nil {
		release, err := u.Locker.Acquire(ctx, characterID, lockTTL)
		if err != nil {
			return false, err
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				hlog.CtxWarnf(ctx, "release lock for character %s: %v", characterID, err)
			}
		}()
	}

	changed := false
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByCharacterID(txCtx, characterID)
		if err != nil {
			return err
		}
		if now.Sub(state.UpdatedAt) < minIdle {
			return nil
		}
		next, events, ok := u.Sim.AdvanceTime(state, now)
		if !ok {
			return nil
		}
		if err := u.StateRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		for i := range events {
			events[i].Payload["character_id"] = characterID
			events[i].Payload["source"] = "sweep"
		}
		if err := u.EventRepo.Append(txCtx, characterID, events); err != nil {
			return err
		}
		changed = true
		return nil
	})
	return changed, err
}
