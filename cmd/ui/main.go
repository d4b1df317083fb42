package main

import (
	"log"

	"github.com/joho/godotenv"

	"gobayes/adapters/rng"
	"gobayes/app"
	engine "gobayes/internal/bayes"
	"gobayes/internal/config"
	dicecalc "gobayes/internal/dice"
	"gobayes/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	posteriorEngine := engine.NewEngine(cfg.Engine.GridSize)
	rngSource := rng.NewSeededSource()
	calc := dicecalc.NewCalculator(cfg.Engine.MCSamples)

	coinSvc := app.NewCoinService(posteriorEngine)
	diceSvc := app.NewDiceService(posteriorEngine, calc, rngSource)
	pokerSvc := app.NewPokerService(posteriorEngine, rngSource)

	server := ui.NewServer(ui.Config{Mode: cfg.Server.GinMode}, coinSvc, diceSvc, pokerSvc, rngSource)

	log.Printf("Report server listening on :%s", cfg.Server.ReportPort)
	if err := server.Run(cfg.Server.ReportPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
