package ports

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrLocked    = errors.New("character locked")
	ErrForbidden = errors.New("forbidden")
)
