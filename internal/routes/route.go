package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/oporajita/reformtrack/internal/container"
	"github.com/oporajita/reformtrack/internal/handlers"
	"github.com/oporajita/reformtrack/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(container.Logger, container.Config.IsProduction()))
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "reformtrack-api",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", handlers.LoginUser(container.AuthService))
		authRoutes.GET("/verify", middleware.RequireAuth(container.Config.JWTSecret), handlers.VerifyToken(container.AuthService))
		// Logout is intentionally unauthenticated: it's a stateless ack.
		authRoutes.GET("/logout", handlers.LogoutUser())
	}

	userRoutes := api.Group("/users")
	{
		userRoutes.POST("/signup", handlers.RegisterUser(container.UserService))
		userRoutes.POST("/verify", handlers.VerifyUserExists(container.UserService))
	}

	proposalRoutes := api.Group("/proposals")
	{
		proposalRoutes.GET("", handlers.GetProposals(container.ProposalService))
		proposalRoutes.GET("/accepted", handlers.GetAcceptedProposals(container.ProposalService))
		proposalRoutes.GET("/public", handlers.GetPublicProposals(container.ProposalService))
		proposalRoutes.GET("/:id", handlers.GetProposalByID(container.ProposalService))
		proposalRoutes.POST("", handlers.CreateProposal(container.ProposalService))
		proposalRoutes.PUT("/:id", handlers.UpdateProposal(container.ProposalService))
		proposalRoutes.DELETE("/:id", handlers.DeleteProposal(container.ProposalService))
	}

	surveyRoutes := api.Group("/surveys")
	{
		surveyRoutes.GET("", handlers.GetSurveys(container.SurveyService))
		surveyRoutes.GET("/:id", handlers.GetSurveyByID(container.SurveyService))
		surveyRoutes.GET("/:id/summary", handlers.GetSurveySummary(container.SurveyService))
		surveyRoutes.POST("", handlers.CreateSurvey(container.SurveyService))
		surveyRoutes.POST("/:id/responses", handlers.SubmitSurveyResponse(container.SurveyService))
		surveyRoutes.DELETE("/:id", handlers.DeleteSurvey(container.SurveyService))
	}

	return r
}
