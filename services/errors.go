package services

import (
	"errors"

	"literary-cms/models"

	"gorm.io/gorm"
)

// notFoundOr turns a gorm missing-row error into the typed NotFound error
// and passes anything else through untouched.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: message}
	}
	return err
}
