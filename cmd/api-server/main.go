package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/workerlens/transcript-archive/internal/config"
	"github.com/workerlens/transcript-archive/internal/llm"
	"github.com/workerlens/transcript-archive/internal/logger"
	"github.com/workerlens/transcript-archive/internal/search"
	"github.com/workerlens/transcript-archive/internal/store"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func main() {
	var configPath string
	var dbPath string
	var port int

	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&dbPath, "db", "", "Path to SQLite database file (overrides config)")
	flag.IntVar(&port, "port", 8080, "Server port")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if dbPath == "" {
		dbPath = cfg.Paths.Database
	}

	ctx := context.Background()
	provider, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to create LLM provider: %v", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	server := &APIServer{
		store:    st,
		searcher: search.New(st, provider, logger.New(cfg.Logging.Level), cfg.Search),
	}

	http.HandleFunc("/api/interviews", enableCORS(server.handleInterviews))
	http.HandleFunc("/api/search", enableCORS(server.handleSearch))
	http.HandleFunc("/api/nearest", enableCORS(server.handleNearest))

	log.Printf("Starting API server on port %d", port)
	log.Printf("Database: %s", dbPath)
	log.Printf("Endpoints:")
	log.Printf("  GET /api/interviews - List archived interviews")
	log.Printf("  GET /api/search?q=&limit= - Semantic search across the archive")
	log.Printf("  GET /api/search?interview_id=&q=&limit= - Semantic search within one interview")
	log.Printf("  GET /api/nearest?q=&limit= - Nearest chunks by raw Euclidean distance")

	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

type APIServer struct {
	store    *store.Store
	searcher search.Searcher
}

func (s *APIServer) handleInterviews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	interviews, err := s.store.ListInterviews(r.Context())
	if err != nil {
		respondWithError(w, fmt.Sprintf("Failed to list interviews: %v", err), http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, interviews)
}

func (s *APIServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		respondWithError(w, "Query parameter q is required", http.StatusBadRequest)
		return
	}
	limit := parseLimit(r)

	if interviewID := r.URL.Query().Get("interview_id"); interviewID != "" {
		results, err := s.searcher.SearchInterview(r.Context(), interviewID, query, limit)
		if err != nil {
			respondWithSearchError(w, err)
			return
		}
		respondWithJSON(w, results)
		return
	}

	results, err := s.searcher.SearchGlobal(r.Context(), query, limit)
	if err != nil {
		respondWithSearchError(w, err)
		return
	}
	respondWithJSON(w, results)
}

func (s *APIServer) handleNearest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		respondWithError(w, "Query parameter q is required", http.StatusBadRequest)
		return
	}

	results, err := s.searcher.Nearest(r.Context(), query, parseLimit(r))
	if err != nil {
		respondWithSearchError(w, err)
		return
	}
	respondWithJSON(w, results)
}

func parseLimit(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 0 // searcher applies the configured default
}

func respondWithSearchError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondWithError(w, "Interview not found", http.StatusNotFound)
		return
	}
	respondWithError(w, fmt.Sprintf("Search failed: %v", err), http.StatusInternalServerError)
}

func enableCORS(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		handler(w, r)
	}
}

func respondWithJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	response := APIResponse{
		Success: true,
		Data:    data,
	}
	json.NewEncoder(w).Encode(response)
}

func respondWithError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: false,
		Error:   message,
	}
	json.NewEncoder(w).Encode(response)
}
