package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"github.com/ngchuong/DevHub/internal/auth"
	"github.com/ngchuong/DevHub/internal/cache"
	"github.com/ngchuong/DevHub/internal/config"
	"github.com/ngchuong/DevHub/internal/handlers"
	"github.com/ngchuong/DevHub/internal/repo"
	"github.com/ngchuong/DevHub/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessions := auth.NewStore(rdb, cfg.Session.TTL.Duration())
	projectCache := cache.NewProjectCache(rdb, cfg.Redis.DefaultTTL.Duration())

	userRepo := repo.NewPGUserRepo(db)
	projectRepo := repo.NewPGProjectRepo(db)
	commentRepo := repo.NewPGCommentRepo(db)
	bookmarkRepo := repo.NewPGBookmarkRepo(db)
	followRepo := repo.NewPGFollowRepo(db)

	authSvc := service.NewAuthService(userRepo)
	userSvc := service.NewUserService(userRepo, followRepo)
	projectSvc := service.NewProjectService(projectRepo, projectCache)
	commentSvc := service.NewCommentService(commentRepo, userRepo, projectCache)
	bookmarkSvc := service.NewBookmarkService(bookmarkRepo, projectCache)

	authHandler := handlers.NewAuthHandler(sessions, authSvc, cfg.Session.TTL.Duration(), cfg.App.IsProd())
	userHandler := handlers.NewUserHandler(userSvc)
	projectHandler := handlers.NewProjectHandler(projectSvc, bookmarkSvc)
	commentHandler := handlers.NewCommentHandler(commentSvc)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkSvc)

	gate := auth.RequireSession(sessions)

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", gate, authHandler.Logout)
	api.GET("/auth/me", gate, authHandler.Me)

	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.GetByID)
	api.GET("/users/:id/followers", userHandler.Followers)
	api.GET("/users/:id/following", userHandler.Following)
	api.POST("/users/:id/follow", gate, userHandler.ToggleFollow)

	api.GET("/projects", projectHandler.List)
	api.GET("/projects/trending", projectHandler.Trending)
	api.GET("/projects/:id", projectHandler.GetByID)
	api.GET("/projects/:id/comments", commentHandler.ListByProject)
	api.POST("/projects", gate, projectHandler.Create)
	api.PATCH("/projects/:id", gate, projectHandler.Update)
	api.DELETE("/projects/:id", gate, projectHandler.Delete)
	api.POST("/projects/:id/bookmark", gate, projectHandler.ToggleBookmark)

	api.POST("/comments", gate, commentHandler.Create)
	api.DELETE("/comments/:id", gate, commentHandler.Delete)

	api.GET("/bookmarks", gate, bookmarkHandler.List)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "DevHub API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
