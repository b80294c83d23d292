package api

import (
	"net/http"
)

const (
	attributionText = "Data provided by CoinGecko"
	attributionURL  = "https://www.coingecko.com"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"coingecko_markets":      "unknown",
		"coingecko_market_chart": "unknown",
		"coingecko_coins":        "unknown",
	}

	if s.listingsService.Healthy() {
		services["coingecko_markets"] = "up"
	}

	if s.historyService.Healthy() {
		services["coingecko_market_chart"] = "up"
	}

	if s.symbolService.Healthy() {
		services["coingecko_coins"] = "up"
	}

	s.sendJSONResponse(w, map[string]interface{}{
		"status":   "ok",
		"services": services,
	})
}

// handleAttribution responds with the data source credit the page must show
func (s *Server) handleAttribution(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, map[string]string{
		"text": attributionText,
		"url":  attributionURL,
	})
}

// handleSymbolsRebuild refetches the coin list behind symbol lookups
func (s *Server) handleSymbolsRebuild(w http.ResponseWriter, r *http.Request) {
	if err := s.symbolService.Rebuild(r.Context()); err != nil {
		s.sendError(w, r, err, nil)
		return
	}

	s.sendJSONResponse(w, map[string]interface{}{
		"status":  "rebuilt",
		"symbols": s.symbolService.Size(),
	})
}
