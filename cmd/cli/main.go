package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gobayes/adapters/report"
	"gobayes/adapters/rng"
	"gobayes/app"
	"gobayes/domain/bayes"
	"gobayes/domain/dice"
	"gobayes/domain/poker"
	engine "gobayes/internal/bayes"
	"gobayes/internal/config"
	dicecalc "gobayes/internal/dice"
)

// toolkit bundles the wired services for the CLI commands
type toolkit struct {
	coin    *app.CoinService
	dice    *app.DiceService
	poker   *app.PokerService
	rng     *rng.SeededSource
	reports *report.Builder
}

func newToolkit() (*toolkit, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	posteriorEngine := engine.NewEngine(cfg.Engine.GridSize)
	rngSource := rng.NewSeededSource()
	calc := dicecalc.NewCalculator(cfg.Engine.MCSamples)

	return &toolkit{
		coin:    app.NewCoinService(posteriorEngine),
		dice:    app.NewDiceService(posteriorEngine, calc, rngSource),
		poker:   app.NewPokerService(posteriorEngine, rngSource),
		rng:     rngSource,
		reports: report.NewBuilder(),
	}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobayes",
		Short: "Bayesian inference tools for coin, dice and poker chance processes",
	}

	rootCmd.AddCommand(
		newCoinCmd(),
		newDiceCmd(),
		newPokerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCoinCmd() *cobra.Command {
	var trials, heads, futureTrials, threshold int
	var comparator string
	var predict, random, asReport bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "coin",
		Short: "Update the Beta(10,10) prior on a coin's bias from observed tosses",
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newToolkit()
			if err != nil {
				return err
			}
			req := app.CoinRequest{Trials: trials, Heads: heads}

			if predict {
				query := bayes.PredictiveQuery{
					FutureTrials: futureTrials,
					Threshold:    threshold,
					Comparator:   bayes.Comparator(comparator),
				}
				if random {
					query = kit.coin.RandomQuery(kit.rng.Stream("coin/random-query", seed))
				}
				pred, err := kit.coin.Predict(req, query)
				if err != nil {
					return err
				}
				if asReport {
					fmt.Println(kit.reports.PredictionReport(pred))
					return nil
				}
				return printJSON(pred)
			}

			res, err := kit.coin.ComputePosterior(req)
			if err != nil {
				return err
			}
			if asReport {
				fmt.Println(kit.reports.CoinReport(res))
				return nil
			}
			return printJSON(res)
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 10, "observed number of tosses")
	cmd.Flags().IntVar(&heads, "heads", 3, "observed number of heads")
	cmd.Flags().BoolVar(&predict, "predict", false, "answer a predictive query instead of plotting the posterior")
	cmd.Flags().IntVar(&futureTrials, "future-trials", 10, "number of future tosses")
	cmd.Flags().IntVar(&threshold, "threshold", 3, "threshold on future heads")
	cmd.Flags().StringVar(&comparator, "comparator", "=", "one of < <= = > >=")
	cmd.Flags().BoolVar(&random, "random", false, "generate a random predictive query")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the random query")
	cmd.Flags().BoolVar(&asReport, "report", false, "print a markdown report instead of JSON")

	return cmd
}

func newDiceCmd() *cobra.Command {
	var event string
	var nDice int
	var biased, asReport bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Infer the per-toss probability of a dice event from simulated tosses",
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newToolkit()
			if err != nil {
				return err
			}
			kind, err := dice.ParseEventKind(event)
			if err != nil {
				return err
			}
			res, err := kit.dice.ComputePosterior(app.DiceRequest{
				Event:  kind,
				Dice:   nDice,
				Biased: biased,
				Seed:   seed,
			})
			if err != nil {
				return err
			}
			if asReport {
				fmt.Println(kit.reports.DiceReport(res))
				return nil
			}
			return printJSON(res)
		},
	}

	cmd.Flags().StringVar(&event, "event", string(dice.AtLeastOneSix), "dice event kind or label")
	cmd.Flags().IntVar(&nDice, "dice", 0, "number of dice (default 3)")
	cmd.Flags().BoolVar(&biased, "biased", false, "use the biased alternative probability")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for simulated observations")
	cmd.Flags().BoolVar(&asReport, "report", false, "print a markdown report instead of JSON")

	return cmd
}

func newPokerCmd() *cobra.Command {
	var hand string
	var decks int
	var asReport bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "poker",
		Short: "Infer the per-hand probability of a poker hand from simulated games",
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := newToolkit()
			if err != nil {
				return err
			}
			rank, err := poker.ParseHandRank(hand)
			if err != nil {
				return err
			}
			res, err := kit.poker.ComputePosterior(app.PokerRequest{
				Hand:  rank,
				Decks: decks,
				Seed:  seed,
			})
			if err != nil {
				return err
			}
			if asReport {
				fmt.Println(kit.reports.PokerReport(res))
				return nil
			}
			return printJSON(res)
		},
	}

	cmd.Flags().StringVar(&hand, "hand", string(poker.RoyalFlush), "poker hand rank or label")
	cmd.Flags().IntVar(&decks, "decks", 0, "number of decks (0 if unknown)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for simulated observations")
	cmd.Flags().BoolVar(&asReport, "report", false, "print a markdown report instead of JSON")

	return cmd
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
