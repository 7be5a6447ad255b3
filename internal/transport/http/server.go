package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/palpite-server/internal/catalog"
	"github.com/vovakirdan/palpite-server/internal/config"
	"github.com/vovakirdan/palpite-server/internal/core"
)

// NewServer builds the HTTP server: health, category listing and the
// game WebSocket endpoint.
func NewServer(registry *core.Registry, cat catalog.Catalog, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/api/categories", categoriesHandler(cat))
	router.GET("/ws", gin.WrapH(NewWSHandler(registry, &cfg.Game, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

// categoriesHandler lists the catalog's category names.
func categoriesHandler(cat catalog.Catalog) gin.HandlerFunc {
	names := cat.Names()
	return func(c *gin.Context) {
		c.JSON(stdhttp.StatusOK, names)
	}
}
