package services

import (
	"errors"

	"careercode_backend/internal/repositories"
	"careercode_backend/pkg/apperrors"
)

// storeError переводит ошибку репозитория в AppError
func storeError(err error) error {
	if errors.Is(err, repositories.ErrInvalidID) {
		return apperrors.ErrInvalidID.WithError(err)
	}
	return apperrors.DatabaseError(err)
}
