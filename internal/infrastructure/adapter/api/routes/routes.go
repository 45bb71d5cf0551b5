package routes

import (
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Import      *handler.ImportHandler
	Transaction *handler.TransactionHandler
	Profile     *handler.ProfileHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api/v1")
	{
		api.POST("/imports", h.Import.ImportRows)
		api.POST("/imports/statement", h.Import.ImportStatement)
		api.POST("/rerun", h.Import.Rerun)

		api.GET("/profiles", h.Profile.ListActive)

		transactions := api.Group("/transactions")
		{
			transactions.GET("", h.Transaction.List)
			transactions.GET("/:id", h.Transaction.Get)
			transactions.DELETE("/:id", h.Transaction.Delete)
			transactions.PUT("/:id/match", h.Transaction.SetMatch)
			transactions.DELETE("/:id/match", h.Transaction.ClearMatch)
			transactions.GET("/:id/provenance", h.Transaction.Provenance)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API. The request
// logger wraps the error handler so that it sees the final status
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
