package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agency-pro/internal/application/auth"
	"github.com/tu-usuario/agency-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CampaignUC *usecase.CampaignUseCase
	PostUC     *usecase.PostUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas las rutas con actor pasan por
// ActorMiddleware: con Bearer Token se usan los claims; sin token, el
// descriptor adminId/adminRole de la petición (forma de referencia del binding).
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())
	app.Use(ActorMiddleware(deps.JWTSecret))

	app.Get("/metrics", MetricsHandler())

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", userHandler.List)
	app.Post("/users", userHandler.Create)
	app.Put("/users/:id", userHandler.Update)
	app.Delete("/users/:id", userHandler.Delete)

	// Campaigns
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	app.Get("/campaigns", campaignHandler.List)
	app.Post("/campaigns", campaignHandler.Create)
	app.Get("/campaigns/:id", campaignHandler.GetByID)

	// Portal del cliente: campañas que revisa un usuario, con sus posts.
	app.Get("/users/:id/campaigns", campaignHandler.ListForClient)

	// Posts
	postHandler := NewPostHandler(deps.PostUC)
	app.Post("/campaigns/:campaignId/posts", postHandler.Create)
	app.Put("/posts/:id", postHandler.Administer)
	app.Put("/posts/:id/status", postHandler.Review)
	app.Delete("/posts/:id", postHandler.Delete)
}
