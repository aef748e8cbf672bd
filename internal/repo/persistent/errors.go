package persistent

import (
	"errors"

	"vocal-feed/internal/entity"

	"gorm.io/gorm"
)

// translate maps gorm sentinel errors onto domain errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return entity.ErrConflict
	default:
		return err
	}
}
