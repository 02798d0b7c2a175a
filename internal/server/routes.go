package server

import (
	"log/slog"
	"net/http"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/middleware"
	serverHandlers "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/server/handlers"
	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/database"
	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/universe"
	universeHandlers "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/universe/handlers"
)

type Routes struct {
	db              *database.DB
	universeService *universe.Service
	logger          *slog.Logger
}

func NewRoutes(db *database.DB, universeService *universe.Service, logger *slog.Logger) *Routes {
	return &Routes{
		db:              db,
		universeService: universeService,
		logger:          logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)
	universeHandler := universeHandlers.NewUniverseHandler(r.universeService, r.logger)

	// Public endpoints
	mux.Handle("GET /api/server/health", healthHandler)
	mux.HandleFunc("GET /api/universes", universeHandler.GetUniverses)
	mux.HandleFunc("GET /api/universes/{id}", universeHandler.GetUniverse)

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("POST /api/universes", middleware.RequireAdmin(http.HandlerFunc(universeHandler.CreateUniverse)))
	mux.Handle("PUT /api/universes/{id}/snapshot", middleware.RequireAdmin(http.HandlerFunc(universeHandler.ReplaceSnapshot)))
	mux.Handle("DELETE /api/universes/{id}", middleware.RequireAdmin(http.HandlerFunc(universeHandler.DeleteUniverse)))
	mux.Handle("PATCH /api/universes/{id}/bodies/{body_id}", middleware.RequireAdmin(http.HandlerFunc(universeHandler.PatchBody)))
	mux.Handle("POST /api/universes/{id}/bodies/{body_id}/reparent", middleware.RequireAdmin(http.HandlerFunc(universeHandler.ReparentBody)))
	mux.Handle("PATCH /api/universes/{id}/groups/{group_id}", middleware.RequireAdmin(http.HandlerFunc(universeHandler.PatchGroup)))
	mux.Handle("POST /api/universes/{id}/groups/{group_id}/reparent", middleware.RequireAdmin(http.HandlerFunc(universeHandler.ReparentGroup)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/universes", "/api/universes/{id}"},
		"admin_endpoints", []string{
			"/api/universes",
			"/api/universes/{id}/snapshot",
			"/api/universes/{id}",
			"/api/universes/{id}/bodies/{body_id}",
			"/api/universes/{id}/groups/{group_id}",
		},
	)

	return mux
}
