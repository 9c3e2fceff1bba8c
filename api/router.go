package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/inventario/auth"
	"github.com/kbukum/inventario/inventory"
	"github.com/kbukum/inventario/logger"
	"github.com/kbukum/inventario/server/endpoint"
	"github.com/kbukum/inventario/server/middleware"
)

// API holds the services the HTTP handlers delegate to.
type API struct {
	auth      *auth.Service
	inventory *inventory.Service
	validator auth.TokenValidator
	log       *logger.Logger
}

// New assembles the API from its services. The validator decides which
// bearer tokens may cross into the /api/ativos group.
func New(authSvc *auth.Service, inventorySvc *inventory.Service, validator auth.TokenValidator, log *logger.Logger) *API {
	return &API{
		auth:      authSvc,
		inventory: inventorySvc,
		validator: validator,
		log:       log.WithComponent("api"),
	}
}

// Register mounts all routes on the engine. The root route and the /auth
// group are public; everything under /api/ativos requires a valid bearer
// token.
func (a *API) Register(r *gin.Engine) {
	r.GET("/", endpoint.Health())

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", a.handleRegister)
		authRoutes.POST("/login", a.handleLogin)
	}

	assets := r.Group("/api/ativos")
	assets.Use(middleware.Auth(a.validator))
	{
		assets.GET("", a.handleListAssets)
		assets.POST("", a.handleCreateAsset)
		assets.GET("/:id", a.handleGetAsset)
		assets.PUT("/:id", a.handleUpdateAsset)
		assets.DELETE("/:id", a.handleDeleteAsset)
	}
}
