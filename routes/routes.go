package routes

import (
	"github.com/7kevin24/ZJU-SFL/handlers"
	"github.com/7kevin24/ZJU-SFL/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	matchHandler *handlers.MatchHandler,
	standingsHandler *handlers.StandingsHandler,
	statsHandler *handlers.StatsHandler,
	exportHandler *handlers.ExportHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)

	// Public read surface: the league table and charts everyone watches.
	router.Get("/schedule", matchHandler.ListSchedule)
	router.Get("/schedule/pending", matchHandler.ListPending)
	router.Get("/standings", standingsHandler.GetStandings)
	router.Get("/stats", statsHandler.GetStats)

	router.Get("/ws/league", webSocketHandler.ServeWs)

	// Admin-only write surface.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.RequireAdmin)

		r.Post("/matches/{matchID}/result", matchHandler.RecordResult)
		r.Post("/schedule/generate", matchHandler.GenerateSchedule)
		r.Post("/export", exportHandler.ExportSnapshot)
	})

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
