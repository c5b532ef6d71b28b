package main

import (
	"log"
	"strconv"
	"time"

	"github.com/hackclub/buildboard-backend/internal/config"
	"github.com/hackclub/buildboard-backend/internal/database"
	"github.com/hackclub/buildboard-backend/internal/hackatime"
	"github.com/hackclub/buildboard-backend/internal/handlers"
	"github.com/hackclub/buildboard-backend/internal/middleware"
	"github.com/hackclub/buildboard-backend/internal/services"
	"github.com/hackclub/buildboard-backend/internal/ws"

	_ "github.com/hackclub/buildboard-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           BuildBoard API
// @version         1.0
// @description     Backend for the BuildBoard hackathon program: projects, hackatime linking, visibility, reviews and votes
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	projectService := services.NewProjectService(db)
	hackatimeService := services.NewHackatimeService(db)
	visibilityService := services.NewVisibilityService(db)
	submissionService := services.NewSubmissionService(db)
	reviewService := services.NewReviewService(db)
	voteService := services.NewVoteService(db)

	var syncManager *hackatime.SyncManager
	if cfg.HackatimeBaseURL != "" {
		client := hackatime.NewClient(cfg.HackatimeBaseURL, cfg.HackatimeStartDate, cfg.HackatimeBypassKey)
		pollMin, _ := strconv.Atoi(cfg.HackatimePollMinutes)
		if pollMin <= 0 {
			pollMin = 15
		}
		syncManager = hackatime.NewSyncManager(db, client, time.Duration(pollMin)*time.Minute)
		syncManager.Start()
		defer syncManager.Stop()
	} else {
		log.Println("HACKATIME_BASE_URL not set, hackatime sync disabled")
	}

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, visibilityService, submissionService, userService, hub)
	hackatimeHandler := handlers.NewHackatimeHandler(hackatimeService, userService, syncManager)
	reviewHandler := handlers.NewReviewHandler(reviewService, hub)
	voteHandler := handlers.NewVoteHandler(voteService, hub)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Sync-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/billboard", wsHandler.HandleBillboard)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		users := api.Group("/users")
		users.Use(middleware.JWTAuth(authService))
		{
			users.GET("/me", userHandler.GetMe)
			users.GET("/me/profile", userHandler.GetProfile)
			users.PUT("/me/profile", userHandler.UpsertProfile)
			users.GET("/me/address", userHandler.GetAddress)
			users.PUT("/me/address", userHandler.UpsertAddress)
		}

		projects := api.Group("/projects")
		projects.Use(middleware.JWTAuth(authService))
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.PatchProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/visibility", projectHandler.GetVisibility)
			projects.POST("/:id/submit", projectHandler.SubmitProject)
			projects.PUT("/:id/hackatime", hackatimeHandler.SetProjectLinks)
			projects.GET("/:id/hackatime", hackatimeHandler.GetProjectLinks)
			projects.GET("/:id/reviews", reviewHandler.ListReviews)
			projects.POST("/:id/reviews", reviewHandler.CreateReview)
			projects.GET("/:id/votes", voteHandler.CountVotes)
			projects.POST("/:id/votes", voteHandler.CastVote)
		}

		ht := api.Group("/hackatime")
		ht.Use(middleware.JWTAuth(authService))
		{
			ht.GET("/unlinked", hackatimeHandler.GetUnlinked)
			ht.POST("/refresh", hackatimeHandler.Refresh)
		}

		sync := api.Group("/sync")
		sync.Use(middleware.SyncAuth(cfg.SyncAPIKey))
		{
			sync.POST("/hackatime/:user_id", hackatimeHandler.SyncRefreshUser)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
