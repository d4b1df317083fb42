package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"gobayes/adapters/api"
	"gobayes/adapters/rng"
	"gobayes/app"
	"gobayes/internal"
	engine "gobayes/internal/bayes"
	"gobayes/internal/config"
	dicecalc "gobayes/internal/dice"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := internal.NewDefaultLogger()

	posteriorEngine := engine.NewEngine(cfg.Engine.GridSize)
	rngSource := rng.NewSeededSource()
	calc := dicecalc.NewCalculator(cfg.Engine.MCSamples)

	coinSvc := app.NewCoinService(posteriorEngine)
	diceSvc := app.NewDiceService(posteriorEngine, calc, rngSource)
	pokerSvc := app.NewPokerService(posteriorEngine, rngSource)

	apiApp := api.NewApp(coinSvc, diceSvc, pokerSvc, rngSource, logger)
	server := &http.Server{Addr: ":" + cfg.Server.APIPort, Handler: apiApp.Router()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("API server listening on :%s", cfg.Server.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
