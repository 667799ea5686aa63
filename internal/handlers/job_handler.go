package handlers

import (
	"net/http"

	"careercode_backend/internal/auth"
	"careercode_backend/internal/middleware"
	"careercode_backend/internal/models"
	"careercode_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	tokens     *auth.TokenService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, tokens *auth.TokenService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		tokens:      tokens,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Публичные маршруты
	public := r.Group("/jobs")
	{
		public.GET("", h.ListJobs)
		public.GET("/:id", h.GetJob)
		public.POST("", h.CreateJob)
	}

	// Маршруты работодателя: сессионная cookie и email, совпадающий с сессией
	employer := r.Group("/jobs")
	employer.Use(middleware.RequireSessionToken(h.tokens), middleware.RequireEmailMatch())
	{
		employer.GET("/applications", h.ListJobsWithApplicationCounts)
	}
}

// ListJobs godoc
// @Summary      Список вакансий
// @Tags         jobs
// @Produce      json
// @Param        email  query  string  false  "Фильтр по email работодателя (hr_email)"
// @Success      200    {array}  map[string]interface{}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobs(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// ListJobsWithApplicationCounts godoc
// @Summary      Вакансии работодателя с количеством откликов
// @Tags         jobs
// @Produce      json
// @Param        email  query  string  true  "Email работодателя, должен совпадать с сессией"
// @Success      200    {array}   map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /jobs/applications [get]
func (h *JobHandler) ListJobsWithApplicationCounts(c *gin.Context) {
	jobs, err := h.jobService.ListJobsWithApplicationCounts(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary      Получить вакансию
// @Description  Для несуществующей вакансии возвращает 200 с пустым телом.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "ID вакансии"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if job == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Создать вакансию
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      map[string]interface{}  true  "Документ вакансии"
// @Success      200  {object}  models.InsertResult
// @Failure      400  {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var job models.Job
	if !h.BindDocument(c, &job) {
		return
	}

	result, err := h.jobService.CreateJob(c.Request.Context(), &job)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
