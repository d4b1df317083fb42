package api

import (
	"gobayes/domain/bayes"
)

// CoinPosteriorRequest is the body of POST /v1/coin/posterior
type CoinPosteriorRequest struct {
	Trials int `json:"trials"`
	Heads  int `json:"heads"`
}

// CoinPredictiveRequest is the body of POST /v1/coin/predictive.
// When Random is set the query fields are ignored and a valid query is
// generated from the seed instead.
type CoinPredictiveRequest struct {
	Trials int                   `json:"trials"`
	Heads  int                   `json:"heads"`
	Query  bayes.PredictiveQuery `json:"query"`
	Random bool                  `json:"random"`
	Seed   int64                 `json:"seed"`
}

// DicePosteriorRequest is the body of POST /v1/dice/posterior
type DicePosteriorRequest struct {
	Event  string `json:"event"`
	Dice   int    `json:"dice"`
	Biased bool   `json:"biased"`
	Seed   int64  `json:"seed"`
}

// PokerPosteriorRequest is the body of POST /v1/poker/posterior
type PokerPosteriorRequest struct {
	Hand  string `json:"hand"`
	Decks int    `json:"decks"`
	Seed  int64  `json:"seed"`
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CatalogResponse lists the selectable events or hands of a tool
type CatalogResponse struct {
	Items interface{} `json:"items"`
}
