// server/internal/api/routes/routes.go
package routes

import (
	"cleanconnect-api-server/config"
	"cleanconnect-api-server/internal/api/handlers"
	"cleanconnect-api-server/internal/api/middleware"
	"cleanconnect-api-server/internal/models"
	"cleanconnect-api-server/internal/pickup"
	"cleanconnect-api-server/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires every handler and returns the engine.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	objectStore handlers.ObjectStore,
	wsHub *socket.Hub,
	pickupService *pickup.Service,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg}
	pickupHandler := &handlers.PickupHandler{DB: db, Service: pickupService, Hub: wsHub}
	recyclerHandler := &handlers.RecyclerHandler{DB: db}
	challengeHandler := &handlers.ChallengeHandler{DB: db}
	quizHandler := &handlers.QuizHandler{DB: db}
	tipHandler := &handlers.TipHandler{DB: db}
	uploadHandler := &handlers.UploadHandler{
		Store:         objectStore,
		MaxSizeBytes:  cfg.Upload.MaxSizeMB * 1024 * 1024,
		DefaultFolder: cfg.Upload.DefaultFolder,
	}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === PUBLIC ROUTES ===

		auth := apiV1.Group("/auth")
		{
			auth.POST("/signup", userHandler.Signup)
			auth.POST("/login", userHandler.Login)
		}

		public := apiV1.Group("/")
		{
			public.GET("/waste-types", pickupHandler.GetWasteTypes)
			public.GET("/pickups/estimate", pickupHandler.GetEstimate)
			public.GET("/recyclers", recyclerHandler.List)
			public.GET("/recyclers/:id", recyclerHandler.Get)
			public.GET("/tips", tipHandler.List)
			public.GET("/tips/random", tipHandler.Random)
			public.GET("/challenges", challengeHandler.List)
			public.GET("/challenges/:id", challengeHandler.Get)
		}

		// === PROTECTED ROUTES ===

		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate())
		{
			users := protected.Group("/users")
			{
				users.GET("/me", userHandler.GetMe)
				users.PATCH("/me", userHandler.UpdateMe)
				users.GET("/me/progress", challengeHandler.ListMyProgress)
			}

			pickups := protected.Group("/pickups")
			{
				pickups.POST("/", pickupHandler.CreatePickup)
				pickups.GET("/", pickupHandler.GetMyPickups)
				pickups.GET("/:id", pickupHandler.GetPickup)
				pickups.POST("/:id/cancel", pickupHandler.Cancel)

				// Recycler-facing views and transitions.
				recyclerOps := pickups.Group("/")
				recyclerOps.Use(middleware.Authorize(models.UserTypeRecycler, models.UserTypeBusiness, models.UserTypeAdmin))
				{
					recyclerOps.GET("/open", pickupHandler.GetOpenPickups)
					recyclerOps.PATCH("/:id/status", pickupHandler.UpdateStatus)
				}
			}

			recyclers := protected.Group("/recyclers")
			{
				recyclers.POST("/", recyclerHandler.Register)
				recyclers.PATCH("/:id/rating", recyclerHandler.UpdateRating)
			}

			challenges := protected.Group("/challenges")
			{
				challenges.POST("/:id/join", challengeHandler.Join)
				challenges.GET("/:id/progress", challengeHandler.GetProgress)
				challenges.PUT("/:id/progress", challengeHandler.UpdateProgress)
			}

			quiz := protected.Group("/quiz")
			{
				quiz.GET("/questions", quizHandler.GetQuestions)
				quiz.POST("/results", quizHandler.SubmitResult)
			}

			uploads := protected.Group("/uploads")
			{
				uploads.POST("/", uploadHandler.Upload)
				uploads.DELETE("/", uploadHandler.Delete)
			}
		}

		// === ADMIN ROUTES ===

		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize(models.UserTypeAdmin))
		{
			admin.POST("/recyclers/:id/verify", recyclerHandler.Verify)
		}
	}

	return router
}
