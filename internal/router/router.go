package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mekas12/AJHB/internal/config"
	"github.com/Mekas12/AJHB/internal/handler"
	"github.com/Mekas12/AJHB/internal/middleware"
	"github.com/Mekas12/AJHB/internal/model"
	"github.com/Mekas12/AJHB/internal/repository"
	"github.com/Mekas12/AJHB/internal/service"
	"github.com/Mekas12/AJHB/internal/token"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, signer *token.Signer) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.APIRateLimit, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	sesionRepo := repository.NewSesionRepository(db)
	logRepo := repository.NewLogAccesoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, sesionRepo, logRepo, signer)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	api := r.Group("/api")

	api.GET("/health", handler.Health(db))

	// Authentication (public); /api/auth/* aliases kept for older frontends.
	api.POST("/login", middleware.LoginRateLimiter(cfg.LoginRateLimit), authH.Login)
	api.POST("/auth/login", middleware.LoginRateLimiter(cfg.LoginRateLimit), authH.Login)
	api.GET("/verify", authH.Verify)
	api.POST("/verify", authH.Verify)
	api.GET("/auth/verify", authH.Verify)
	api.POST("/auth/verify", authH.Verify)
	api.POST("/auth/logout", authH.Logout)

	// User management — director only.
	usuarios := api.Group("/users", middleware.RequireRole(authSvc, model.RolDirector))
	{
		usuarios.GET("", usuariosH.Listar)
		usuarios.POST("", usuariosH.Crear)
		usuarios.PUT("/:id", usuariosH.Actualizar)
		usuarios.DELETE("/:id", usuariosH.Eliminar)
	}

	return r
}
