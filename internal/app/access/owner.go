package access

import (
	"context"
	"strings"

	"unbounded/internal/app/ports"
)

// Authorize checks that ownerID owns characterID. An empty ownerID or a nil
// repository skips the check, which is how internal callers bypass it.
func Authorize(ctx context.Context, characters ports.CharacterRepository, characterID, ownerID string) error {
	if characters == nil || strings.TrimSpace(ownerID) == "" {
		return nil
	}
	profile, err := characters.Get(ctx, characterID)
	if err != nil {
		return err
	}
	if profile.OwnerID != "" && profile.OwnerID != ownerID {
		return ports.ErrForbidden
	}
	return nil
}
