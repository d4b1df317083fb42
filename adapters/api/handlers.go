package api

import (
	"encoding/json"
	"net/http"

	"gobayes/app"
	"gobayes/domain/core"
	"gobayes/domain/dice"
	"gobayes/domain/poker"
	apperrors "gobayes/internal/errors"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleCoinPosterior(w http.ResponseWriter, r *http.Request) {
	var req CoinPosteriorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, apperrors.InvalidInput("request body must be valid JSON"))
		return
	}

	result, err := a.coin.ComputePosterior(app.CoinRequest{Trials: req.Trials, Heads: req.Heads})
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleCoinPredictive(w http.ResponseWriter, r *http.Request) {
	var req CoinPredictiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, apperrors.InvalidInput("request body must be valid JSON"))
		return
	}

	query := req.Query
	if req.Random {
		query = a.coin.RandomQuery(a.rng.Stream("coin/random-query", req.Seed))
	}

	result, err := a.coin.Predict(app.CoinRequest{Trials: req.Trials, Heads: req.Heads}, query)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleDicePosterior(w http.ResponseWriter, r *http.Request) {
	var req DicePosteriorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, apperrors.InvalidInput("request body must be valid JSON"))
		return
	}

	kind, err := dice.ParseEventKind(req.Event)
	if err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.dice.ComputePosterior(app.DiceRequest{
		Event:  kind,
		Dice:   req.Dice,
		Biased: req.Biased,
		Seed:   req.Seed,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleDiceEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{Items: dice.Events()})
}

func (a *App) handlePokerPosterior(w http.ResponseWriter, r *http.Request) {
	var req PokerPosteriorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, apperrors.InvalidInput("request body must be valid JSON"))
		return
	}

	rank, err := poker.ParseHandRank(req.Hand)
	if err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.poker.ComputePosterior(app.PokerRequest{
		Hand:  rank,
		Decks: req.Decks,
		Seed:  req.Seed,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handlePokerHands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{Items: poker.Hands()})
}

// writeError maps domain errors onto HTTP statuses: validation problems
// are the caller's fault, a degenerate posterior means the inputs were
// well-formed but the computation cannot produce a distribution.
func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apperrors.GetCode(err)

	switch {
	case core.IsValidationError(err) || code == apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
		code = apperrors.CodeInvalidInput
	case core.IsDegeneracyError(err):
		status = http.StatusUnprocessableEntity
		code = apperrors.CodeDegeneratePosterior
	}

	if a.logger != nil && status == http.StatusInternalServerError {
		a.logger.Error("request failed: %v", err)
	}

	writeJSON(w, status, ErrorResponse{Code: code, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
