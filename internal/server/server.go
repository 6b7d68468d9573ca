// Package server implements the reading proxy: it accepts the app's card
// context, applies the fixed system prompt, forwards to the upstream model,
// and returns the reply as {answer}.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/arcanaland/arcana/internal/reading"
)

// fallbackAnswer is the user-displayable text returned alongside errors.
const fallbackAnswer = "Nepodařilo se spojit s vesmírem. Zkus to prosím za chvíli znovu."

type upstreamClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// API is the proxy's HTTP surface.
type API struct {
	upstream upstreamClient
	logger   *zap.Logger
	mux      http.ServeMux
}

// NewAPI wires the routes onto a fresh mux.
func NewAPI(upstream upstreamClient, logger *zap.Logger) *API {
	api := &API{
		upstream: upstream,
		logger:   logger,
	}

	api.mux.HandleFunc("POST /api/reading", api.handleReading)
	api.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return api
}

func (api *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.mux.ServeHTTP(w, r)
}

type readingResponse struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (api *API) handleReading(w http.ResponseWriter, r *http.Request) {
	var req reading.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.writeJSON(w, http.StatusBadRequest, readingResponse{Error: "invalid request body"})
		return
	}

	if len(req.Cards) == 0 {
		api.writeJSON(w, http.StatusBadRequest, readingResponse{Error: "no cards in request"})
		return
	}

	prompt := reading.BuildPrompt(req)

	api.logger.Info("forwarding reading request",
		zap.String("spread", req.SpreadName),
		zap.String("mode", req.Mode),
		zap.Int("cards", len(req.Cards)))

	answer, err := api.upstream.Complete(r.Context(), reading.SystemPrompt, prompt)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, ErrMissingAPIKey) {
			status = http.StatusInternalServerError
		}
		api.logger.Error("upstream request failed", zap.Error(err))
		api.writeJSON(w, status, readingResponse{
			Error:  err.Error(),
			Answer: fallbackAnswer,
		})
		return
	}

	api.writeJSON(w, http.StatusOK, readingResponse{Answer: answer})
}

func (api *API) writeJSON(w http.ResponseWriter, status int, resp readingResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		api.logger.Error("writing response failed", zap.Error(err))
	}
}
