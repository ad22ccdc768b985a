package repositories

import (
	"errors"

	"airport-booking/concourse/internal/common"

	"gorm.io/gorm"
)

// notFound turns gorm's record-not-found into a typed NotFoundError, passing other errors through
func notFound(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &common.NotFoundError{Resource: resource, ID: id}
	}
	return err
}
