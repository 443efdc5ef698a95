package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/config"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/geocode"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/names"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/rank"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/registry"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/reservoir"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/scenario"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/similarity"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/store"
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/wrd"
)

// Time format constant
const timeFormat = time.RFC3339

// timeNow returns the current time
var timeNow = time.Now

// SimilarityRequest compares a register name with a candidate name.
// Function optionally selects a single registered scorer by name.
type SimilarityRequest struct {
	Registered string `json:"registered"`
	Candidate  string `json:"candidate"`
	ISO        string `json:"iso,omitempty"`
	Function   string `json:"function,omitempty"`
}

// RankRequest ranks a geocoder response against a stored record
type RankRequest struct {
	RecordID string            `json:"record_id"`
	Address  string            `json:"address"`
	Encoded  string            `json:"encoded_address"`
	Response *geocode.Response `json:"response"`
}

// GeomatchRequest matches a stored record against registry features
type GeomatchRequest struct {
	RecordID string             `json:"record_id"`
	Features []registry.Feature `json:"features"`
}

// PairRequest pairs dam points with waterbodies
type PairRequest struct {
	Dams        []reservoir.Dam       `json:"dams"`
	Waterbodies []reservoir.Waterbody `json:"waterbodies"`
}

// Server represents the API server
type Server struct {
	router     *mux.Router
	config     *config.Config
	store      *store.Store
	functions  *similarity.Registry
	httpServer *http.Server
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, st *store.Store) *Server {
	s := &Server{
		config:    cfg,
		store:     st,
		functions: similarity.NewRegistry(),
		router:    mux.NewRouter(),
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Health check
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// Record endpoints
	s.router.HandleFunc("/records", s.handleAddRecord).Methods(http.MethodPost)
	s.router.HandleFunc("/records/{id}", s.handleGetRecord).Methods(http.MethodGet)
	s.router.HandleFunc("/records/{id}/scenarios", s.handleGetScenarios).Methods(http.MethodGet)
	s.router.HandleFunc("/records/{id}/placement", s.handleGetPlacement).Methods(http.MethodGet)

	// Matching endpoints
	s.router.HandleFunc("/similarity", s.handleSimilarity).Methods(http.MethodPost)
	s.router.HandleFunc("/rank", s.handleRank).Methods(http.MethodPost)
	s.router.HandleFunc("/geomatch", s.handleGeomatch).Methods(http.MethodPost)
	s.router.HandleFunc("/pair", s.handlePair).Methods(http.MethodPost)
}

// Start starts the API server
func (s *Server) Start() error {
	timeout := time.Duration(s.config.API.Timeout) * time.Second
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.API.Host, s.config.API.Port),
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	log.Printf("Starting API server on %s:%d", s.config.API.Host, s.config.API.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the API server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": timeNow().Format(timeFormat),
	})
}

// Record handlers

// handleAddRecord handles POST /records
func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	var rec wrd.SourceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if rec.Country == "" {
		respondWithError(w, http.StatusBadRequest, "Record country is required")
		return
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	rec.Repair()
	if err := s.store.SaveRecord(r.Context(), &rec); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save record: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, rec)
}

// handleGetRecord handles GET /records/{id}
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	rec, err := s.store.Record(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Record not found: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, rec)
}

// handleGetScenarios handles GET /records/{id}/scenarios
func (s *Server) handleGetScenarios(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	rec, err := s.store.Record(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Record not found: "+err.Error())
		return
	}

	queries, ok := scenario.Build(&rec)
	if !ok {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"record_id": id,
			"queries":   []scenario.Query{},
			"flag":      geocode.LabelNoName,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"record_id": id,
		"queries":   queries,
		"count":     len(queries),
	})
}

// handleGetPlacement handles GET /records/{id}/placement
func (s *Server) handleGetPlacement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	p, err := s.store.Placement(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Placement not found: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

// Matching handlers

// handleSimilarity handles POST /similarity
func (s *Server) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	var request SimilarityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if request.Function != "" {
		f, err := s.functions.GetByName(request.Function)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]float64{
			strings.ToLower(f.Name()): f.Compare(request.Registered, request.Candidate),
		})
		return
	}

	scores := map[string]float64{
		"strict":  names.StrictName(request.Registered, request.Candidate, request.ISO),
		"lenient": names.LenientName(request.Registered, request.Candidate),
	}
	for _, name := range s.functions.Names() {
		f, err := s.functions.GetByName(name)
		if err != nil {
			continue
		}
		scores[strings.ToLower(name)] = f.Compare(request.Registered, request.Candidate)
	}
	respondWithJSON(w, http.StatusOK, scores)
}

// handleRank handles POST /rank
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var request RankRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if request.Response == nil {
		respondWithError(w, http.StatusBadRequest, "Geocoder response is required")
		return
	}

	rec, err := s.store.Record(r.Context(), request.RecordID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Record not found: "+err.Error())
		return
	}

	queries, _ := scenario.Build(&rec)
	cands := geocode.Classify(&rec, request.Address, request.Encoded, request.Response)
	if err := s.store.SaveCandidates(r.Context(), rec.ID, cands); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save candidates: "+err.Error())
		return
	}

	best, found := rank.Best(&rec, queries, cands)
	if !found {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"record_id": rec.ID,
			"found":     false,
			"tier":      rank.Excluded,
		})
		return
	}

	placement := &store.Placement{
		RecordID: rec.ID,
		Source:   "geocoder",
		Tier:     best.Tier,
		Lat:      best.Candidate.Location.Lat,
		Lng:      best.Candidate.Location.Lng,
		Scenario: best.Candidate.Scenario,
	}
	if err := s.store.SavePlacement(r.Context(), placement); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save placement: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"record_id": rec.ID,
		"found":     true,
		"tier":      best.Tier,
		"candidate": best.Candidate,
	})
}

// handleGeomatch handles POST /geomatch
func (s *Server) handleGeomatch(w http.ResponseWriter, r *http.Request) {
	var request GeomatchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if len(request.Features) == 0 {
		respondWithError(w, http.StatusBadRequest, "No features provided")
		return
	}

	rec, err := s.store.Record(r.Context(), request.RecordID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Record not found: "+err.Error())
		return
	}

	m, found := registry.MatchRecord(&rec, request.Features)
	if !found {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"record_id": rec.ID,
			"found":     false,
		})
		return
	}

	placement := &store.Placement{
		RecordID: rec.ID,
		Source:   "registry",
		Tier:     m.Tier,
		Lat:      m.Feature.Lat,
		Lng:      m.Feature.Lng,
	}
	if err := s.store.SavePlacement(r.Context(), placement); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save placement: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"record_id": rec.ID,
		"found":     true,
		"tier":      m.Tier,
		"feature":   m.Feature,
	})
}

// handlePair handles POST /pair
func (s *Server) handlePair(w http.ResponseWriter, r *http.Request) {
	var request PairRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if len(request.Dams) == 0 {
		respondWithError(w, http.StatusBadRequest, "No dams provided")
		return
	}

	pairs := reservoir.AssignWith(request.Dams, request.Waterbodies, reservoir.Options{
		RadiiMeters:   s.config.Pairing.RadiiMeters,
		MaxCandidates: s.config.Pairing.MaxCandidates,
	})
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"pairs": pairs,
		"count": len(pairs),
	})
}

// Response helpers

// respondWithError responds with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON responds with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
