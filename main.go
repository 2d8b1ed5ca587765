package main

import (
	"log"
	"net/http"

	"blog-api/config"
	"blog-api/handlers"
	"blog-api/helper"
	"blog-api/middleware"
	"blog-api/repositories"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment configuration
	config.MustLoad()

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)

	// Setup router
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
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

	RegisterRoutes(router, authHandler, articleHandler, tagHandler)

	// Start server
	port := config.Conf.Server.Port
	log.Printf("Server starting on port %s", port)
	log.Fatal(router.Run(":" + port))
}

// RegisterRoutes mounts the auth and blog route groups.
func RegisterRoutes(router *gin.Engine, authHandler *handlers.AuthHandler, articleHandler *handlers.ArticleHandler, tagHandler *handlers.TagHandler) {
	api := router.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)
	}

	blog := api.Group("/blog")

	// Articles: reads are public with the visibility rule, writes need
	// an authenticated caller.
	articles := blog.Group("/article")
	{
		articles.GET("", middleware.OptionalAuthMiddleware(), articleHandler.GetArticles)
		articles.POST("", middleware.AuthMiddleware(), articleHandler.CreateArticle)
		articles.GET("/published", middleware.OptionalAuthMiddleware(), articleHandler.GetPublishedArticles)
		articles.GET("/:slug", middleware.OptionalAuthMiddleware(), articleHandler.GetArticle)
		articles.PUT("/:slug", middleware.AuthMiddleware(), articleHandler.UpdateArticle)
		articles.PATCH("/:slug", middleware.AuthMiddleware(), articleHandler.UpdateArticle)
		articles.DELETE("/:slug", middleware.AuthMiddleware(), articleHandler.DeleteArticle)
		articles.POST("/:slug/publish", middleware.AuthMiddleware(), articleHandler.PublishArticle)
		articles.POST("/:slug/unpublish", middleware.AuthMiddleware(), articleHandler.UnpublishArticle)
	}

	// Tags
	tags := blog.Group("/tag")
	{
		tags.GET("", tagHandler.GetTags)
		tags.POST("", middleware.AuthMiddleware(), tagHandler.CreateTag)
		tags.GET("/:id", tagHandler.GetTag)
		tags.PUT("/:id", middleware.AuthMiddleware(), tagHandler.UpdateTag)
		tags.PATCH("/:id", middleware.AuthMiddleware(), tagHandler.UpdateTag)
		tags.DELETE("/:id", middleware.AuthMiddleware(), tagHandler.DeleteTag)
	}
}
