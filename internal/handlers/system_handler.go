package handlers

import (
	"context"
	"net/http"
	"time"

	"careercode_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	store Pinger
}

func NewSystemHandler(store Pinger) *SystemHandler {
	return &SystemHandler{store: store}
}

func (h *SystemHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}

// Root godoc
// @Summary  Приветствие
// @Tags     system
// @Produce  plain
// @Success  200  {string}  string  "hello world"
// @Router   / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "hello world")
}

// Health godoc
// @Summary  Проверка доступности хранилища
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.CtxWithError(ctx, "health check failed", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
