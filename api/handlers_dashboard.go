package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/export"
)

type dashboardResponse struct {
	dashboard.Overview
	History      *historyResponse `json:"history,omitempty"`
	HistoryError string           `json:"history_error,omitempty"`
	Warnings     []string         `json:"warnings"`
}

// handleDashboard responds with everything the dashboard page shows for a selection:
// metric cards, movers, market share, cap comparison and the history of the first coin.
// A failed history fetch is reported in the body; the rest of the page is still served.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
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

	response := dashboardResponse{
		Overview: dashboard.BuildOverview(listings, splitParam(r.URL.Query().Get("selected")), n, field),
	}

	if len(response.Metrics) > 0 {
		symbol := response.Metrics[0].Symbol
		history, err := s.historyService.History(r.Context(), symbol, r.URL.Query().Get("days"))
		warnings = append(warnings, history.Warnings...)
		if err != nil {
			zap.L().Warn("Dashboard history unavailable", zap.String("symbol", symbol), zap.Error(err))
			response.HistoryError = err.Error()
		} else {
			samples := dashboard.PrepareHistory(history.Payload, history.Symbol)
			response.History = &historyResponse{
				Symbol:      history.Symbol,
				Days:        history.Days,
				Samples:     samples,
				PriceChange: dashboard.PriceChange(samples),
				Warnings:    nonNil(history.Warnings),
			}
		}
	}
	response.Warnings = nonNil(warnings)

	s.setCacheStatusHeader(w, result.CacheStatus)
	s.setWarningHeaders(w, warnings)
	s.sendJSONResponse(w, response)
}

// handleExport responds with a CSV attachment of the selected coins
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	listings, result, warnings, err := s.loadListings(r)
	if err != nil {
		s.sendError(w, r, err, warnings)
		return
	}

	names := splitParam(r.URL.Query().Get("selected"))
	if len(names) == 0 {
		names = dashboard.DefaultSelection(listings)
	}

	body, err := export.CSV(dashboard.SelectByName(listings, names))
	if err != nil {
		s.sendError(w, r, err, warnings)
		return
	}

	s.setCacheStatusHeader(w, result.CacheStatus)
	s.setWarningHeaders(w, warnings)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(s.now())+`"`)
	if _, err := w.Write(body); err != nil {
		zap.L().Error("Error writing export", zap.Error(err))
	}
}
