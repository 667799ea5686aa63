package apperrors

import "net/http"

// Авторизация. Тексты сообщений - часть публичного контракта:
// клиенты читают поле "message" в ответах 401/403.
var (
	ErrMissingCredential = New(
		CodeMissingCredential,
		"auth",
		"Unauthorized access",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		CodeInvalidToken,
		"auth",
		"Unauthorized access",
		http.StatusUnauthorized,
	)

	ErrInvalidIdentityToken = New(
		CodeInvalidIdentityToken,
		"auth",
		"unauthorized access",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		CodeForbidden,
		"auth",
		"Forbidden access",
		http.StatusForbidden,
	)
)

// Запросы и хранилище
var (
	ErrInvalidID = New(
		CodeInvalidID,
		"request",
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrEnrichmentFailed = New(
		CodeEnrichmentFailed,
		"applications",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// ErrApplicantMismatch - кандидат запрашивает чужие отклики
var ErrApplicantMismatch = New(
	CodeForbidden,
	"applications",
	"forbidden",
	http.StatusForbidden,
)

// ErrBadRequest - тело запроса не является JSON-объектом
var ErrBadRequest = New(
	CodeBadRequest,
	"request",
	"Invalid request body",
	http.StatusBadRequest,
)
