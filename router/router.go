package router

import (
	"time"

	"chauffeur/api"
	"chauffeur/config"
	_ "chauffeur/docs"
	"chauffeur/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires all routes.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")
	{
		// Authentication routes (no login required)
		authHandler := api.NewAuthHandler(cfg)
		passwordResetHandler := api.NewPasswordResetHandler(cfg)
		auth := apiGroup.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)

			auth.POST("/password/request-reset", passwordResetHandler.RequestPasswordReset)
			auth.GET("/password/verify-token", passwordResetHandler.VerifyResetToken)
			auth.POST("/password/reset", passwordResetHandler.ResetPassword)
		}

		// Routes behind JWT authentication
		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/me", authHandler.GetMe)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			rideHandler := api.NewRideHandler()
			rides := authorized.Group("/rides")
			{
				rides.POST("", rideHandler.Create)
				rides.GET("", rideHandler.List)
				rides.GET("/:id", rideHandler.Get)
				rides.PUT("/:id", rideHandler.Update)
				rides.DELETE("/:id", rideHandler.Delete)
			}

			settingsHandler := api.NewSettingsHandler()
			authorized.GET("/settings", settingsHandler.Get)
			authorized.PUT("/settings", settingsHandler.Update)

			statsHandler := api.NewStatsHandler()
			authorized.GET("/stats", statsHandler.Dashboard)

			leaderboardHandler := api.NewLeaderboardHandler()
			authorized.GET("/leaderboard", leaderboardHandler.Get)

			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware allows the dashboard frontend to call the API from
// another origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
