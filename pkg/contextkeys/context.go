package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// Ключи, которые middleware авторизации кладут в gin.Context
const (
	// SessionClaimsKey - *auth.SessionClaims после RequireSessionToken
	SessionClaimsKey = contextKey("session_claims")
	// TokenEmailKey - email, подтвержденный провайдером идентификации
	TokenEmailKey = contextKey("token_email")
)

func (k contextKey) String() string { return string(k) }
