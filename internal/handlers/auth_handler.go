package handlers

import (
	"net/http"

	"careercode_backend/internal/auth"
	"careercode_backend/internal/logger"
	"careercode_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	tokens       *auth.TokenService
	cookieSecure bool
}

func NewAuthHandler(base *BaseHandler, tokens *auth.TokenService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		tokens:       tokens,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes регистрирует маршрут выдачи сессионного токена
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jwt", h.IssueToken)
}

// IssueToken godoc
// @Summary      Выдать сессионный токен
// @Description  Подписывает тело запроса (должно содержать email) и кладет токен в http-only cookie "token".
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        claim  body      map[string]interface{}  true  "Claim, e.g. {\"email\": \"a@x.com\"}"
// @Success      200    {object}  map[string]bool
// @Failure      400    {object}  map[string]string
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var claim map[string]any
	if !h.BindDocument(c, &claim) {
		return
	}

	token, err := h.tokens.Issue(claim)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Сессионная cookie без max-age: срок жизни задает сам токен
	c.SetCookie(middleware.SessionCookieName, token, 0, "/", "", h.cookieSecure, true)

	logger.CtxInfo(c.Request.Context(), "session token issued")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
