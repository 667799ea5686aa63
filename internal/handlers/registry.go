package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	SystemHandler      *SystemHandler
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
}
