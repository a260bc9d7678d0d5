package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-renamer/internal/auth"
	"invoice-renamer/internal/renamer"
	"invoice-renamer/internal/shared/config"
	"invoice-renamer/internal/shared/metrics"
	"invoice-renamer/internal/shared/server/middleware"
	"invoice-renamer/internal/shared/server/respond"
	"invoice-renamer/internal/web"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	// Dependencies
	sessions := auth.NewService(cfg.GatePassword, cfg.SessionTTL)
	pages := web.NewHandler(sessions)
	renameSvc := renamer.NewService()
	uploadHandler := renamer.NewHandler(renameSvc, cfg.MaxUploadBytes)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	pages.RegisterRoutes(r)

	gated := r.Group("/")
	gated.Use(middleware.Session(sessions))
	uploadHandler.RegisterRoutes(gated)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
