package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by Find and Update methods when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique index. It
	// requires gorm.Config.TranslateError.
	ErrDuplicate = errors.New("duplicate record")
)

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
