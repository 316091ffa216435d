package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fumer/blog-platform-api/docs"
	"github.com/fumer/blog-platform-api/internal/api/handler"
	"github.com/fumer/blog-platform-api/internal/api/middleware"
	"github.com/fumer/blog-platform-api/internal/core/domain"
	"github.com/fumer/blog-platform-api/internal/core/service"
	mongodb "github.com/fumer/blog-platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fumer/blog-platform-api/internal/infrastructure/db/redis"
	"github.com/fumer/blog-platform-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Environment"},
		MaxAge:           86400,
	}))
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	views := redisdb.NewViewCounter(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	postService := service.NewPostService(postRepo, views, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService, cfg.UploadDir, log)
	publicHandler := handler.NewPublicHandler(postService)
	interactionHandler := handler.NewInteractionHandler(postService)
	healthHandler := handler.NewHealthHandler(db, cfg.Env)

	authRequired := middleware.Auth(authService)
	authOptional := middleware.OptionalAuth(authService, log)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.PUT("/profile", authHandler.UpdateProfile, authRequired)

	// --- Admin surface ---
	admin := e.Group("/api/admin")
	admin.POST("/posts", postHandler.Create, authRequired, adminOnly)
	admin.GET("/posts", postHandler.List, authRequired, adminOnly)
	admin.GET("/posts/status/:status", postHandler.ListByStatus, authRequired, adminOnly)
	admin.GET("/posts/:id", postHandler.Get, authOptional)
	admin.PUT("/posts/:id", postHandler.Update, authRequired, adminOnly)
	admin.DELETE("/posts/:id", postHandler.Delete, authRequired, adminOnly)
	admin.GET("/public/posts", publicHandler.List, authOptional)
	admin.GET("/public/posts/:id", publicHandler.Get, authOptional)

	// --- Reader interactions ---
	admin.POST("/posts/:id/comments", interactionHandler.AddComment, authRequired)
	admin.POST("/posts/:id/like", interactionHandler.ToggleLike, authRequired)
	admin.POST("/posts/:id/bookmark", interactionHandler.ToggleBookmark, authRequired)
	admin.GET("/user/bookmarks", interactionHandler.ListBookmarks, authRequired)
	admin.GET("/user/likes", interactionHandler.ListLikes, authRequired)

	// --- Public surface ---
	e.GET("/api/posts", publicHandler.List, authOptional)
	e.GET("/api/posts/:id", publicHandler.Get, authOptional)

	return e
}
