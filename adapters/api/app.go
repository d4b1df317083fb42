package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gobayes/app"
	"gobayes/internal"
	"gobayes/ports"
)

// App wires the three tool services behind a JSON HTTP surface
type App struct {
	router *chi.Mux
	coin   *app.CoinService
	dice   *app.DiceService
	poker  *app.PokerService
	rng    ports.RNGPort
	logger *internal.Logger
}

// NewApp creates the API application
func NewApp(coin *app.CoinService, dice *app.DiceService, poker *app.PokerService, rngPort ports.RNGPort, logger *internal.Logger) *App {
	a := &App{
		router: chi.NewRouter(),
		coin:   coin,
		dice:   dice,
		poker:  poker,
		rng:    rngPort,
		logger: logger,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// Router returns the HTTP handler
func (a *App) Router() http.Handler {
	return a.router
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes registers all endpoints
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	a.router.Route("/v1", func(r chi.Router) {
		r.Post("/coin/posterior", a.handleCoinPosterior)
		r.Post("/coin/predictive", a.handleCoinPredictive)
		r.Post("/dice/posterior", a.handleDicePosterior)
		r.Get("/dice/events", a.handleDiceEvents)
		r.Post("/poker/posterior", a.handlePokerPosterior)
		r.Get("/poker/hands", a.handlePokerHands)
	})
}
