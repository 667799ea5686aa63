package middleware

import (
	"careercode_backend/internal/auth"
	"careercode_backend/internal/logger"
	"careercode_backend/pkg/apperrors"
	"careercode_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionCookieName - имя cookie с сессионным токеном
const SessionCookieName = "token"

// RequireSessionToken - middleware проверки сессионного JWT из cookie.
// Claims кладутся в контекст под ключом contextkeys.SessionClaimsKey.
func RequireSessionToken(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			logger.CtxWarn(ctx, "session cookie missing", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrMissingCredential)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.CtxWarn(ctx, "session token rejected", "path", c.Request.URL.Path, "error", err)
			apperrors.HandleError(c, apperrors.ErrInvalidToken.WithError(err))
			return
		}

		c.Set(contextkeys.SessionClaimsKey.String(), claims)
		c.Request = c.Request.WithContext(logger.WithEmail(ctx, claims.Email))
		c.Next()
	}
}

// RequireEmailMatch сравнивает query-параметр email с email из сессии.
// Ставится после RequireSessionToken. Сравнение точное, с учетом регистра.
// Сессия без email не владеет ничем и получает 403.
func RequireEmailMatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		claims, ok := GetSessionClaims(c)
		if !ok {
			logger.CtxError(ctx, "email match gate ran without session claims", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrMissingCredential)
			return
		}

		if claims.Email == "" {
			logger.CtxWarn(ctx, "session token carries no email", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}

		if c.Query("email") != claims.Email {
			logger.CtxWarn(ctx, "query email does not match session", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

// RequireExternalIdentity проверяет bearer-токен у провайдера идентификации
// и кладет подтвержденный email под ключом contextkeys.TokenEmailKey.
// Сам email ни с чем не сравнивается.
func RequireExternalIdentity(verifier auth.IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			logger.CtxWarn(ctx, "bearer token missing", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrMissingCredential)
			return
		}

		email, err := verifier.VerifyIDToken(ctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "identity token rejected", "path", c.Request.URL.Path, "error", err)
			apperrors.HandleError(c, apperrors.ErrInvalidIdentityToken.WithError(err))
			return
		}

		c.Set(contextkeys.TokenEmailKey.String(), email)
		c.Request = c.Request.WithContext(logger.WithEmail(ctx, email))
		c.Next()
	}
}

// GetSessionClaims извлекает claims, установленные RequireSessionToken
func GetSessionClaims(c *gin.Context) (*auth.SessionClaims, bool) {
	val, exists := c.Get(contextkeys.SessionClaimsKey.String())
	if !exists {
		return nil, false
	}
	claims, ok := val.(*auth.SessionClaims)
	return claims, ok && claims != nil
}

// GetTokenEmail извлекает email, установленный RequireExternalIdentity
func GetTokenEmail(c *gin.Context) (string, bool) {
	val, exists := c.Get(contextkeys.TokenEmailKey.String())
	if !exists {
		return "", false
	}
	email, ok := val.(string)
	return email, ok
}
