package routes

import (
	"github.com/ALjabriOmars/SCSP/configs"
	"github.com/ALjabriOmars/SCSP/controllers"
	"github.com/ALjabriOmars/SCSP/middlewares"
	"github.com/ALjabriOmars/SCSP/repository"
	"github.com/ALjabriOmars/SCSP/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories → services → controllers; ไม่มี global state
	userRepo := repository.NewUserRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	bidRepo := repository.NewBidRepository(db)

	authCtrl := controllers.NewAuthController(
		services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL))
	issueCtrl := controllers.NewIssueController(services.NewIssueService(issueRepo))
	taskCtrl := controllers.NewTaskController(services.NewTaskService(taskRepo))
	bidCtrl := controllers.NewBidController(services.NewBidService(bidRepo))

	api := r.Group("/api")

	api.GET("/ping", func(c *gin.Context) { c.JSON(200, gin.H{"message": "pong"}) })

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Issues (resident)
	issues := api.Group("/issues")
	{
		issues.POST("/report", issueCtrl.Report)
		issues.GET("", issueCtrl.List)
		issues.GET("/", issueCtrl.List)
		issues.PATCH("/:id/resolve", issueCtrl.Resolve)
		issues.DELETE("/:id", issueCtrl.Delete)
	}

	// Tasks (city authority)
	api.POST("/tasks", taskCtrl.Create)
	api.GET("/tasks", taskCtrl.List)
	api.PATCH("/tasks/:id/status", taskCtrl.UpdateStatus)

	// Bids (service provider)
	api.GET("/bids", bidCtrl.List)
	api.POST("/bids", bidCtrl.Submit)
	api.PATCH("/bids/:id/status", bidCtrl.UpdateStatus)
}
