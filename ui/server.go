package ui

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gobayes/adapters/report"
	"gobayes/app"
	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/domain/dice"
	"gobayes/domain/poker"
	"gobayes/ports"
)

// Server serves HTML report pages for the three inference tools. It is a
// thin rendering surface over the app services; no state survives a
// request.
type Server struct {
	router  *gin.Engine
	coin    *app.CoinService
	dice    *app.DiceService
	poker   *app.PokerService
	rng     ports.RNGPort
	reports *report.Builder
}

// Config holds report server configuration
type Config struct {
	Port string
	Mode string // gin mode: debug, release or test
}

// NewServer creates a report server wired to the tool services
func NewServer(cfg Config, coin *app.CoinService, diceSvc *app.DiceService, pokerSvc *app.PokerService, rngPort ports.RNGPort) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	s := &Server{
		router:  gin.Default(),
		coin:    coin,
		dice:    diceSvc,
		poker:   pokerSvc,
		rng:     rngPort,
		reports: report.NewBuilder(),
	}
	s.setupRoutes()
	return s
}

// Run starts the server on the configured port
func (s *Server) Run(port string) error {
	return s.router.Run(":" + port)
}

// Handler exposes the gin engine for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/coin", s.handleCoin)
	s.router.GET("/coin/predict", s.handleCoinPredict)
	s.router.GET("/dice", s.handleDice)
	s.router.GET("/poker", s.handlePoker)
}

func (s *Server) handleIndex(c *gin.Context) {
	md := "# Bayesian Inference Tools\n\n" +
		"- [Coin](/coin?trials=10&heads=3)\n" +
		"- [Dice](/dice?event=at_least_one_6&dice=3)\n" +
		"- [Poker](/poker?hand=full_house&decks=1)\n"
	s.renderMarkdown(c, md)
}

func (s *Server) handleCoin(c *gin.Context) {
	trials, heads, ok := s.coinParams(c)
	if !ok {
		return
	}

	res, err := s.coin.ComputePosterior(app.CoinRequest{Trials: trials, Heads: heads})
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderMarkdown(c, s.reports.CoinReport(res))
}

func (s *Server) handleCoinPredict(c *gin.Context) {
	trials, heads, ok := s.coinParams(c)
	if !ok {
		return
	}

	var query bayes.PredictiveQuery
	if c.Query("random") == "true" {
		seed := intQuery(c, "seed", 0)
		query = s.coin.RandomQuery(s.rng.Stream("coin/random-query", int64(seed)))
	} else {
		query = bayes.PredictiveQuery{
			FutureTrials: intQuery(c, "future_trials", 10),
			Threshold:    intQuery(c, "threshold", 3),
			Comparator:   bayes.Comparator(c.DefaultQuery("comparator", "=")),
		}
	}

	pred, err := s.coin.Predict(app.CoinRequest{Trials: trials, Heads: heads}, query)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderMarkdown(c, s.reports.PredictionReport(pred))
}

func (s *Server) handleDice(c *gin.Context) {
	kind, err := dice.ParseEventKind(c.DefaultQuery("event", string(dice.AtLeastOneSix)))
	if err != nil {
		s.renderError(c, err)
		return
	}

	res, err := s.dice.ComputePosterior(app.DiceRequest{
		Event:  kind,
		Dice:   intQuery(c, "dice", 0),
		Biased: c.Query("biased") == "true",
		Seed:   int64(intQuery(c, "seed", 0)),
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderMarkdown(c, s.reports.DiceReport(res))
}

func (s *Server) handlePoker(c *gin.Context) {
	rank, err := poker.ParseHandRank(c.DefaultQuery("hand", string(poker.RoyalFlush)))
	if err != nil {
		s.renderError(c, err)
		return
	}

	res, err := s.poker.ComputePosterior(app.PokerRequest{
		Hand:  rank,
		Decks: intQuery(c, "decks", 0),
		Seed:  int64(intQuery(c, "seed", 0)),
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderMarkdown(c, s.reports.PokerReport(res))
}

func (s *Server) coinParams(c *gin.Context) (trials, heads int, ok bool) {
	trials = intQuery(c, "trials", 10)
	heads = intQuery(c, "heads", 3)
	if trials < 1 || heads < 0 || heads > trials {
		s.renderError(c, core.NewObservationError(trials, heads))
		return 0, 0, false
	}
	return trials, heads, true
}

func (s *Server) renderMarkdown(c *gin.Context, md string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", report.RenderHTML(md))
}

func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if core.IsValidationError(err) {
		status = http.StatusBadRequest
	} else if core.IsDegeneracyError(err) {
		status = http.StatusUnprocessableEntity
	}
	c.Data(status, "text/html; charset=utf-8",
		report.RenderHTML(fmt.Sprintf("# Input error\n\n%s\n", err.Error())))
}

func intQuery(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
