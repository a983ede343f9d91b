package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iqbalbaharum/token-leaderboard/internal/view"
)

func CreateRoutes(builder LeaderboardBuilder, renderer *view.Renderer, requestLogging bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if requestLogging {
		r.Use(middleware.Logger)
	}

	var LeaderboardHandler = NewLeaderboardHandler(builder, renderer)

	r.Get("/", LeaderboardHandler.GetPage)
	r.Get("/api/leaderboard", LeaderboardHandler.GetJSON)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
