package app

import (
	"context"
	"fmt"

	"careercode_backend/internal/auth"
)

// unavailableVerifier отклоняет любой bearer-токен.
// Подставляется, если провайдер идентификации не инициализировался.
type unavailableVerifier struct {
	cause error
}

func (v unavailableVerifier) VerifyIDToken(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: identity provider unavailable: %v", auth.ErrInvalidIdentityToken, v.cause)
}
