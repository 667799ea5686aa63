package handlers

import (
	"net/http"

	"careercode_backend/internal/auth"
	"careercode_backend/internal/logger"
	"careercode_backend/internal/middleware"
	"careercode_backend/internal/models"
	"careercode_backend/internal/services"
	"careercode_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	verifier           auth.IdentityVerifier
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, verifier auth.IdentityVerifier) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		verifier:           verifier,
	}
}

// UpdateStatusRequest - тело PATCH /application/:id
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/application")
	{
		public.GET("/job/:job_id", h.ListByJob)
		public.POST("", h.CreateApplication)
		public.PATCH("/:id", h.UpdateStatus)
	}

	// Маршруты кандидата: bearer-токен проверяет провайдер идентификации
	applicant := r.Group("/application")
	applicant.Use(middleware.RequireExternalIdentity(h.verifier))
	{
		applicant.GET("", h.ListMyApplications)
	}
}

// ListMyApplications godoc
// @Summary      Отклики кандидата
// @Description  Отклики с данными вакансии (company, title, company_logo). Email из токена должен совпадать с query email.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Email кандидата"
// @Success      200    {array}   map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /application [get]
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.Query("email")

	tokenEmail, ok := middleware.GetTokenEmail(c)
	if !ok || tokenEmail != email {
		logger.CtxWarn(ctx, "applicant email does not match identity token", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ErrApplicantMismatch)
		return
	}

	apps, err := h.applicationService.ListForApplicant(ctx, email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

// ListByJob godoc
// @Summary      Отклики на вакансию
// @Tags         applications
// @Produce      json
// @Param        job_id  path   string  true  "ID вакансии"
// @Success      200     {array}  map[string]interface{}
// @Router       /application/job/{job_id} [get]
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	apps, err := h.applicationService.ListByJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}
	c.JSON(http.StatusOK, apps)
}

// CreateApplication godoc
// @Summary      Откликнуться на вакансию
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      map[string]interface{}  true  "Документ отклика (jobId, applicant, status, ...)"
// @Success      200          {object}  models.InsertResult
// @Failure      400          {object}  map[string]string
// @Router       /application [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var app models.Application
	if !h.BindDocument(c, &app) {
		return
	}

	result, err := h.applicationService.CreateApplication(c.Request.Context(), &app)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateStatus godoc
// @Summary      Изменить статус отклика
// @Description  Меняет только поле status. Для несуществующего id возвращает matchedCount 0.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      string               true  "ID отклика"
// @Param        input  body      UpdateStatusRequest  true  "Новый статус"
// @Success      200    {object}  models.UpdateResult
// @Failure      400    {object}  map[string]string
// @Router       /application/{id} [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.applicationService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
