package uuidgen

import "github.com/google/uuid"

// Generator issues random (v4) UUID strings.
type Generator struct{}

func (Generator) NewID() string {
	return uuid.NewString()
}
