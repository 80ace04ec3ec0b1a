package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"dwed-assistant/config"
	"dwed-assistant/internal/chat/session"
	"dwed-assistant/pkg/llmprovider"
	"dwed-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Chat domain
	db        *sql.DB
	providers *llmprovider.Manager
	sessions  *session.Store
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	DB        *sql.DB
	Providers *llmprovider.Manager
	Sessions  *session.Store
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		db:          cfg.DB,
		providers:   cfg.Providers,
		sessions:    cfg.Sessions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.providers == nil {
		return errors.New("provider manager is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	return nil
}
