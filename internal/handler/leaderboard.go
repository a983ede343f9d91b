package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/iqbalbaharum/token-leaderboard/internal/types"
	"github.com/iqbalbaharum/token-leaderboard/internal/utils"
	"github.com/iqbalbaharum/token-leaderboard/internal/view"
)

type LeaderboardBuilder interface {
	BuildLeaderboard(ctx context.Context) (*types.Leaderboard, error)
}

type leaderboardHandler struct {
	builder  LeaderboardBuilder
	renderer *view.Renderer
}

func NewLeaderboardHandler(builder LeaderboardBuilder, renderer *view.Renderer) *leaderboardHandler {
	return &leaderboardHandler{
		builder:  builder,
		renderer: renderer,
	}
}

// GetPage builds the view model fresh for every request and renders the
// HTML page. Any upstream failure yields a generic error page.
func (h *leaderboardHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	board, err := h.builder.BuildLeaderboard(ctx)

	if err != nil {
		select {
		case <-ctx.Done():
			http.Error(w, ErrTimeout, http.StatusGatewayTimeout)
		default:
			log.Printf("failed to build leaderboard: %v", err)
			http.Error(w, ErrUpstream, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.RenderLeaderboard(w, board); err != nil {
		log.Printf("failed to render leaderboard: %v", err)
	}
}

// GetJSON serves the same aggregate as the page, as JSON.
func (h *leaderboardHandler) GetJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	board, err := h.builder.BuildLeaderboard(ctx)

	if err != nil {
		select {
		case <-ctx.Done():
			http.Error(w, ErrTimeout, http.StatusGatewayTimeout)
		default:
			log.Printf("failed to build leaderboard: %v", err)
			http.Error(w, ErrUpstream, http.StatusInternalServerError)
		}
		return
	}

	utils.Encode(w, r, http.StatusOK, board)
}
