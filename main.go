package main

import (
	"net/http"
	"os"
	"time"

	"literary-cms/config"
	"literary-cms/handlers"
	"literary-cms/helper"
	"literary-cms/middleware"
	"literary-cms/models"
	"literary-cms/repositories"
	"literary-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	versionRepo := repositories.NewArticleVersionRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	activityRepo := repositories.NewActivityLogRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	// Login rate limiter with its expiry sweeper
	limiter := services.NewLoginRateLimiter(
		cfg.LoginMaxAttempts, cfg.LoginWindow(), cfg.LoginBlock(),
		services.SystemClock(), log,
	)
	limiter.StartSweeper(time.Minute)
	defer limiter.Stop()

	// Services
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	activityService := services.NewActivityService(activityRepo)
	versionService := services.NewVersionService(versionRepo, articleRepo, userRepo, activityService, log)
	articleService := services.NewArticleService(articleRepo, userRepo, versionService, notificationService, activityService, log)
	authService := services.NewAuthService(userRepo, limiter, activityService, log)
	categoryService := services.NewCategoryService(categoryRepo)

	// Handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, versionService, httpHelper)
	notificationHandler := handlers.NewNotificationHandler(notificationService, httpHelper)
	activityHandler := handlers.NewActivityHandler(activityService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.POST("/auth/logout", authHandler.Logout)

			// Articles and the editorial workflow
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/submit", articleHandler.SubmitForReview)
				articles.GET("/:id/versions", articleHandler.GetVersions)
				articles.POST("/:id/versions/:version_id/restore", articleHandler.RestoreVersion)

				admin := articles.Group("")
				admin.Use(middleware.RequireRole(models.RoleAdmin))
				{
					admin.POST("/:id/approve", articleHandler.Approve)
					admin.POST("/:id/reject", articleHandler.Reject)
					admin.POST("/bulk/status", articleHandler.BulkUpdateStatus)
					admin.POST("/bulk/delete", articleHandler.BulkDelete)
				}
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationHandler.List)
				notifications.GET("/unread-count", notificationHandler.UnreadCount)
				notifications.PUT("/:id/read", notificationHandler.MarkRead)
				notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			}

			// Activity log (admin only)
			activity := protected.Group("/activity")
			activity.Use(middleware.RequireRole(models.RoleAdmin))
			{
				activity.GET("", activityHandler.List)
				activity.GET("/export", activityHandler.ExportCSV)
			}

			// Categories (create is admin-guarded in the service)
			categories := protected.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
			}
		}

		// Public routes (published articles only)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:slug", articleHandler.GetPublicArticle)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/categories/:id", categoryHandler.GetCategory)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
