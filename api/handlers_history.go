package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/guregu/null/v6"

	"github.com/status-im/market-dashboard/dashboard"
)

type historyResponse struct {
	Symbol      string                       `json:"symbol"`
	Days        int                          `json:"days"`
	Samples     []dashboard.HistoricalSample `json:"samples"`
	PriceChange null.Float                   `json:"price_change"`
	Warnings    []string                     `json:"warnings"`
}

// handleHistory responds with the daily series of one symbol
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	result, err := s.historyService.History(r.Context(), symbol, r.URL.Query().Get("days"))
	if err != nil {
		s.sendError(w, r, err, result.Warnings)
		return
	}

	samples := dashboard.PrepareHistory(result.Payload, result.Symbol)

	s.setCacheStatusHeader(w, result.CacheStatus)
	s.setWarningHeaders(w, result.Warnings)
	s.sendJSONResponse(w, historyResponse{
		Symbol:      result.Symbol,
		Days:        result.Days,
		Samples:     samples,
		PriceChange: dashboard.PriceChange(samples),
		Warnings:    nonNil(result.Warnings),
	})
}
