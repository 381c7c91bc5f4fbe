package decaysweep

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Run sweeps every interval until ctx is done.
func (u UseCase) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := u.Execute(ctx); err != nil && ctx.Err() == nil {
				hlog.CtxErrorf(ctx, "decay sweep failed: %v", err)
			}
		}
	}
}
