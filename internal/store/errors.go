package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record referenced by id or key
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

// IsNotFound reports whether err is a not-found condition, either ours
// or the engine's.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// translate maps engine errors onto the store taxonomy. Anything
// unrecognized passes through untouched; the store never swallows an
// engine error.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
