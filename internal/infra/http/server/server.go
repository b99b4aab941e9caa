package server

import (
	"net/http"

	"github.com/andrewshostak/team-lookup-service/config"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/http/server/handler"
	"github.com/andrewshostak/team-lookup-service/internal/infra/http/server/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	LookupHandler  *handler.LookupHandler
	BoardHandler   *handler.BoardHandler
	HistoryHandler *handler.HistoryHandler
	MetricsHandler http.Handler
}

func NewServer(cfg config.App, handlers Handlers) (*gin.Engine, error) {
	r := gin.Default()

	registerRoutes(r, cfg, handlers)

	return r, nil
}

func registerRoutes(r *gin.Engine, cfg config.App, handlers Handlers) {
	r.GET("/metrics", gin.WrapH(handlers.MetricsHandler))

	v1 := r.Group("/v1")
	if len(cfg.HashedAPIKeys) > 0 {
		v1.Use(middleware.APIKeyAuth(cfg.HashedAPIKeys, cfg.SecretKey))
	}

	v1.Use(middleware.Timeout(cfg.Timeout))

	v1.GET("/teams/lookup", handlers.LookupHandler.Lookup)
	v1.POST("/board/searches", handlers.BoardHandler.Search)
	v1.GET("/board", handlers.BoardHandler.Get)
	v1.GET("/searches", handlers.HistoryHandler.List)
}
