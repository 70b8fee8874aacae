package main

import (
	"NetSentry/internal/config"
	"NetSentry/internal/query"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.ClickHouse.Enabled {
		log.Fatalf("ClickHouse is not enabled in config. The API server reads alerts from ClickHouse and cannot start without it.")
	}

	// Initialize querier against the alert store
	querier, err := query.NewClickHouseQuerier(cfg.ClickHouse)
	if err != nil {
		log.Fatalf("Failed to create querier: %v", err)
	}
	defer querier.Close()

	// Initialize router
	r := mux.NewRouter()

	// Create API handler with querier dependency
	apiHandler := &APIHandler{querier: querier}

	// Define API routes
	r.HandleFunc("/health", apiHandler.healthHandler).Methods("GET")
	r.HandleFunc("/api/v1/alerts/recent", apiHandler.recentAlertsHandler).Methods("GET")
	r.HandleFunc("/api/v1/alerts/summary", apiHandler.alertSummaryHandler).Methods("GET")
	r.HandleFunc("/api/v1/alerts/source/{addr}", apiHandler.alertsBySourceHandler).Methods("GET")

	// Start HTTP server
	server := &http.Server{
		Addr:    cfg.API.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("API server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", server.Addr, err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("API server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("API server exited.")
}

// APIHandler holds the dependencies for API handlers.
type APIHandler struct {
	querier query.Querier
}

func (h *APIHandler) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// recentAlertsHandler returns the newest alerts across all sources.
func (h *APIHandler) recentAlertsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, 100)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	alerts, err := h.querier.RecentAlerts(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to query alerts: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, alerts)
}

// alertSummaryHandler returns per-attack-type counts, optionally bounded by a
// ?since=RFC3339 query parameter.
func (h *APIHandler) alertSummaryHandler(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid 'since' parameter: %v", err), http.StatusBadRequest)
			return
		}
		since = parsed
	}

	counts, err := h.querier.CountsByType(r.Context(), since)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to query alert summary: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, counts)
}

// alertsBySourceHandler returns the newest alerts raised against one source
// address.
func (h *APIHandler) alertsBySourceHandler(w http.ResponseWriter, r *http.Request) {
	addr := mux.Vars(r)["addr"]
	limit, err := limitParam(r, 100)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	alerts, err := h.querier.AlertsBySource(r.Context(), addr, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to query alerts for %s: %v", addr, err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, alerts)
}

func limitParam(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid 'limit' parameter: %q", raw)
	}
	return limit, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
