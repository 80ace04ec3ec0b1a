package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"dwed-assistant/internal/chat/completion"
	chatHTTP "dwed-assistant/internal/chat/delivery/http"
	chatUC "dwed-assistant/internal/chat/usecase"
	plannerSqlite "dwed-assistant/internal/planner/repository/sqlite"
	venueSqlite "dwed-assistant/internal/venue/repository/sqlite"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
//  1. Repositories over the shared document store
//  2. Completer over the provider manager
//  3. UseCase
//  4. HTTP handler and routes under /api
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repositories
	venueRepo, err := venueSqlite.New(srv.db, srv.l)
	if err != nil {
		return err
	}
	plannerRepo, err := plannerSqlite.New(srv.db, srv.l)
	if err != nil {
		return err
	}

	// 2. Completer
	completer := completion.New(srv.providers, srv.l)

	// 3. UseCase
	uc := chatUC.New(srv.l, srv.sessions, completer, venueRepo, plannerRepo)

	// 4. HTTP handler and routes
	h := chatHTTP.New(srv.l, uc)
	chatHTTP.MapChatRoutes(api, h)

	srv.l.Infof(ctx, "Chat domain registered: POST /api/chat, POST /api/chat/reset")
	return nil
}
