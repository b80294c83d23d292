package api

import (
	"net/http"

	"github.com/status-im/market-dashboard/coingecko_markets"
	"github.com/status-im/market-dashboard/dashboard"
)

type listingsResponse struct {
	Currency string                  `json:"currency"`
	Page     int                     `json:"page"`
	PerPage  int                     `json:"per_page"`
	Data     []dashboard.CoinListing `json:"data"`
	Warnings []string                `json:"warnings"`
}

type moversResponse struct {
	Field    dashboard.ChangeField   `json:"field"`
	N        int                     `json:"n"`
	Gainers  []dashboard.CoinListing `json:"gainers"`
	Losers   []dashboard.CoinListing `json:"losers"`
	Warnings []string                `json:"warnings"`
}

// loadListings fetches and reshapes the listings named by the request query.
// Warnings from query parsing and from the service are merged.
func (s *Server) loadListings(r *http.Request) ([]dashboard.CoinListing, coingecko_markets.ListingsResult, []string, error) {
	perPage, warnings := getIntParam(r, "per_page")
	page, pageWarnings := getIntParam(r, "page")
	warnings = append(warnings, pageWarnings...)

	params := coingecko_markets.ListingsParams{
		Currency: getParamLowercase(r, "vs_currency"),
		PerPage:  perPage,
		Page:     page,
	}

	result, err := s.listingsService.Listings(r.Context(), params)
	warnings = append(warnings, result.Warnings...)
	if err != nil {
		return nil, result, warnings, err
	}

	listings, err := dashboard.PrepareListings(result.Payload)
	if err != nil {
		return nil, result, warnings, err
	}
	return listings, result, warnings, nil
}

// handleListings responds with ranked listing rows
func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	listings, result, warnings, err := s.loadListings(r)
	if err != nil {
		s.sendError(w, r, err, warnings)
		return
	}

	s.setCacheStatusHeader(w, result.CacheStatus)
	s.setWarningHeaders(w, warnings)
	s.sendJSONResponse(w, listingsResponse{
		Currency: result.Payload.Currency,
		Page:     result.Params.Page,
		PerPage:  result.Params.PerPage,
		Data:     listings,
		Warnings: nonNil(warnings),
	})
}

// handleMovers responds with the top gainers and losers by the requested change field
func (s *Server) handleMovers(w http.ResponseWriter, r *http.Request) {
	field, err := dashboard.ParseChangeField(r.URL.Query().Get("field"))
	if err != nil {
		s.sendError(w, r, err, nil)
		return
	}
	n, nWarnings := getIntParamOrDefault(r, "n", dashboard.DefaultMoversCount)

	listings, result, warnings, err := s.loadListings(r)
	warnings = append(nWarnings, warnings...)
	if err != nil {
		s.sendError(w, r, err, warnings)
		return
	}

	gainers, losers := dashboard.TopMovers(listings, n, field)

	s.setCacheStatusHeader(w, result.CacheStatus)
	s.setWarningHeaders(w, warnings)
	s.sendJSONResponse(w, moversResponse{
		Field:    field,
		N:        len(gainers),
		Gainers:  gainers,
		Losers:   losers,
		Warnings: nonNil(warnings),
	})
}

// handleMarketShare responds with the BTC/ETH/altcoin split of the listings
func (s *Server) handleMarketShare(w http.ResponseWriter, r *http.Request) {
	listings, result, warnings, err := s.loadListings(r)
	if err != nil {
		s.sendError(w, r, err, warnings)
		return
	}

	share, err := dashboard.MarketShare(listings)
	if err != nil {
		s.sendError(w, r, err, warnings)
		return
	}

	s.setCacheStatusHeader(w, result.CacheStatus)
	s.setWarningHeaders(w, warnings)
	s.sendJSONResponse(w, share)
}

func nonNil(warnings []string) []string {
	if warnings == nil {
		return []string{}
	}
	return warnings
}
