package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Системные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Запросы
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	CodeInvalidID  ErrorCode = "INVALID_ID"

	// Аутентификация и авторизация
	CodeMissingCredential    ErrorCode = "MISSING_CREDENTIAL"
	CodeInvalidToken         ErrorCode = "INVALID_TOKEN"
	CodeInvalidIdentityToken ErrorCode = "INVALID_IDENTITY_TOKEN"
	CodeForbidden            ErrorCode = "FORBIDDEN"

	// Обогащение откликов данными вакансий
	CodeEnrichmentFailed ErrorCode = "ENRICHMENT_FAILED"
)
