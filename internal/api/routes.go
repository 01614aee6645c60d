package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/snapshots/run", handler.RunSnapshot).Methods("POST")
	api.HandleFunc("/portfolio/{uid}/{leagueID}/history", handler.GetPortfolioHistory).Methods("GET")
	api.HandleFunc("/portfolio/{uid}/{leagueID}/value", handler.GetLatestPortfolioValue).Methods("GET")
	api.HandleFunc("/stocks", handler.GetStocks).Methods("GET")

	return r
}
