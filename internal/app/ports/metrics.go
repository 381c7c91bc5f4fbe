package ports

import "unbounded/internal/domain/character"

type InteractionMetrics interface {
	RecordSuccess(kind character.InteractionKind, applied bool)
	RecordConflict()
	RecordFailure()
	RecordFallback()
}
