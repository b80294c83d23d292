package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/interfaces"
)

type Server struct {
	port            string
	listingsService interfaces.IListingsService
	historyService  interfaces.IHistoryService
	symbolService   interfaces.ISymbolService
	server          *http.Server
	now             func() time.Time
}

func New(port string, listingsService interfaces.IListingsService, historyService interfaces.IHistoryService, symbolService interfaces.ISymbolService) *Server {
	return &Server{
		port:            port,
		listingsService: listingsService,
		historyService:  historyService,
		symbolService:   symbolService,
		now:             time.Now,
	}
}

// Handler builds the router with all routes and middleware
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, accessLogMiddleware, recoveryMiddleware)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/listings", s.handleListings).Methods(http.MethodGet)
	v1.HandleFunc("/movers", s.handleMovers).Methods(http.MethodGet)
	v1.HandleFunc("/market_share", s.handleMarketShare).Methods(http.MethodGet)
	v1.HandleFunc("/history/{symbol}", s.handleHistory).Methods(http.MethodGet)
	v1.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	v1.HandleFunc("/export.csv", s.handleExport).Methods(http.MethodGet)
	v1.HandleFunc("/attribution", s.handleAttribution).Methods(http.MethodGet)
	v1.HandleFunc("/symbols/rebuild", s.handleSymbolsRebuild).Methods(http.MethodPost)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	zap.L().Info("Server starting", zap.String("address", "http://localhost:"+s.port))
	zap.L().Info("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Error("Server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			zap.L().Error("Error shutting down server", zap.Error(err))
		}
	}
}
