package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dwed-assistant/internal/middleware"
	"dwed-assistant/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	ctx := context.Background()

	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.Cors())
	srv.gin.Use(mw.Metrics())
	srv.gin.Use(mw.RateLimit())

	if srv.cfg.RateLimit.Enabled {
		srv.l.Infof(ctx, "Rate limit: %d req/min burst=%d", srv.cfg.RateLimit.PerMin, srv.cfg.RateLimit.Burst)
	}

	if srv.environment == string(model.EnvironmentProduction) && len(srv.cfg.CORS.AllowedOrigins) == 0 {
		srv.l.Warn(ctx, "CORS allow-list is empty in production; all origins are allowed")
	}
	srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.banner)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	if err := srv.setupChatDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
