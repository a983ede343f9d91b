package main

import (
	"fmt"
	"log"
	"net/http"

	_ "go.uber.org/automaxprocs"

	"github.com/go-chi/chi/v5"
	"github.com/iqbalbaharum/token-leaderboard/internal/aggregator"
	"github.com/iqbalbaharum/token-leaderboard/internal/config"
	"github.com/iqbalbaharum/token-leaderboard/internal/explorer"
	"github.com/iqbalbaharum/token-leaderboard/internal/handler"
	"github.com/iqbalbaharum/token-leaderboard/internal/identity"
	"github.com/iqbalbaharum/token-leaderboard/internal/view"
)

type Server struct {
	Router *chi.Mux
}

func CreateServer(builder handler.LeaderboardBuilder, renderer *view.Renderer) *Server {
	server := &Server{
		Router: handler.CreateRoutes(builder, renderer, !config.Production),
	}

	return server
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := config.InitEnv(); err != nil {
		log.Print(err)
		return
	}

	explorerClient := explorer.NewClient(config.ExplorerBaseUrl, config.TokenAddress)
	resolver := identity.NewResolver(config.IdentityBaseUrl, config.IdentityClientType, config.IdentityClientVersion)
	agg := aggregator.New(explorerClient, resolver)

	renderer, err := view.NewRenderer(config.WalletBaseUrl)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	log.Printf("Serving leaderboard for token %s via %s", config.TokenAddress, config.ExplorerBaseUrl)

	server := CreateServer(agg, renderer)
	addr := fmt.Sprintf(":%d", config.Port)
	log.Printf("server running on %s", addr)

	if err := http.ListenAndServe(addr, server.Router); err != nil {
		log.Fatal(err)
	}
}
