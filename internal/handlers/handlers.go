package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"aishield/api/internal/config"
	"aishield/api/internal/middleware"
	"aishield/api/internal/repository"
	"aishield/api/internal/service"
	"aishield/api/internal/storage"
)

type HandlerSet struct {
	log             zerolog.Logger
	cfg             *config.AppConfig
	authService     *service.AuthService
	scanService     *service.ScanService
	takedownService *service.TakedownService
	uploadService   *service.UploadService
	db              *pgxpool.Pool
	cache           *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	scanRepo := repository.NewScanRepository(db)
	takedownRepo := repository.NewTakedownRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	auth := service.NewAuthService(userRepo, sessionRepo, cfg.Security.SessionTTL, log)
	scans := service.NewScanService(scanRepo, cache, cfg.Scan.Stream, log)
	takedowns := service.NewTakedownService(takedownRepo, log)
	uploads := service.NewUploadService(uploadRepo, store, log)

	return HandlerSet{
		log:             log,
		cfg:             cfg,
		authService:     auth,
		scanService:     scans,
		takedownService: takedowns,
		uploadService:   uploads,
		db:              db,
		cache:           cache,
	}
}

func (h HandlerSet) Routes(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	auth := router.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/register", h.Register)
	auth.POST("/logout", h.Logout)

	authed := router.Group("")
	authed.Use(middleware.Auth(h.cfg.Security.SessionCookieName, h.authService))
	authed.GET("/user", h.CurrentUser)
	authed.POST("/scan-requests", h.CreateScanRequest)
	authed.GET("/scan-requests", h.ListScanRequests)
	authed.GET("/scan-results", h.ListScanResults)
	authed.POST("/takedown-requests", h.CreateTakedownRequest)
	authed.GET("/takedown-requests", h.ListTakedownRequests)
	authed.POST("/uploads", h.Upload)
	authed.GET("/uploads", h.ListUploads)
}
