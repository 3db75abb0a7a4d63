package service

import (
	"errors"

	"rpchat/internal/models"
	"rpchat/internal/repository"
)

// translateError maps repository sentinels onto client-facing errors. Anything
// it does not recognise is returned unchanged and ends up as a 500.
func translateError(err error, notFoundMessage string) error {
	var appErr *models.AppError
	switch {
	case errors.Is(err, repository.ErrForeignKey):
		appErr = models.NewValidationError("Referenced record does not exist")
	case errors.Is(err, repository.ErrNotFound) && notFoundMessage != "":
		appErr = models.NewNotFoundError(notFoundMessage)
	default:
		return err
	}

	appErr.Err = err
	return appErr
}
