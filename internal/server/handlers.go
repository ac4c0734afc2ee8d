package server

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/insights"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/observability"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/runid"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/simulate"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/storage"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/streak"
)

// SimulateRequest is the JSON body for simulation endpoints. Rates are
// fractions (0.4 means 40%). A nil seed means pick one at random.
type SimulateRequest struct {
	domain.StrategyParams
	Seed *uint64 `json:"seed,omitempty"`
}

// SimulateResponse is the JSON response for a single simulation.
type SimulateResponse struct {
	RunID    string                    `json:"run_id"`
	Seed     uint64                    `json:"seed"`
	Params   domain.StrategyParams     `json:"params"`
	Summary  *domain.SimulationSummary `json:"summary"`
	Insights []domain.Insight          `json:"insights"`
	Trades   []*domain.TradeRecord     `json:"trades"`
}

// BatchRequest is the JSON body for batch simulation.
type BatchRequest struct {
	domain.StrategyParams
	Runs int     `json:"runs"`
	Seed *uint64 `json:"seed,omitempty"`
}

// BatchResponse is the JSON response for a batch simulation.
type BatchResponse struct {
	Seed    uint64                `json:"seed"`
	Params  domain.StrategyParams `json:"params"`
	Summary *domain.BatchSummary  `json:"summary"`
}

// StreaksResponse is the JSON response for the losing-streak table.
type StreaksResponse struct {
	SampleSize int                `json:"sample_size"`
	Rows       []domain.StreakRow `json:"rows"`
}

// RunListItem is one entry in the run listing; the full ledger is only
// returned by the per-run endpoint.
type RunListItem struct {
	RunID     string                    `json:"run_id"`
	Params    domain.StrategyParams     `json:"params"`
	Seed      uint64                    `json:"seed"`
	Summary   *domain.SimulationSummary `json:"summary"`
	CreatedAt time.Time                 `json:"created_at"`
}

// StatusResponse is the JSON response for the /status endpoint.
type StatusResponse struct {
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime"`
	StartedAt time.Time `json:"started_at"`
	LastRunAt time.Time `json:"last_run_at,omitempty"`
	RunsSeen  int       `json:"runs_seen"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := StatusResponse{
		Status:    "running",
		Uptime:    time.Since(s.startedAt).String(),
		StartedAt: s.startedAt,
		LastRunAt: s.lastRunAt,
		RunsSeen:  s.runsSeen,
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// handleSimulate runs one simulation, stores the run for re-display and
// returns the full result. Validation happens here, before the engine
// is touched.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	seed := pickSeed(req.Seed)
	start := time.Now()
	records, summary := simulate.SimulateSeeded(req.StrategyParams, seed)
	observability.RecordSimulation(len(records), time.Since(start).Seconds())

	createdAt := time.Now().UTC()
	run := &domain.SimulationRun{
		RunID:     runid.Compute(req.StrategyParams, seed, createdAt),
		Params:    req.StrategyParams,
		Seed:      seed,
		Trades:    records,
		Summary:   summary,
		CreatedAt: createdAt,
	}

	if err := s.store.Insert(r.Context(), run); err != nil {
		s.log.Error().Err(err).Str("run_id", run.RunID).Msg("failed to store run")
		writeError(w, http.StatusInternalServerError, "failed to store run")
		return
	}
	s.recordRun()

	writeJSON(w, http.StatusOK, SimulateResponse{
		RunID:    run.RunID,
		Seed:     seed,
		Params:   run.Params,
		Summary:  summary,
		Insights: insights.Evaluate(summary),
		Trades:   records,
	})
}

// handleSimulateBatch runs many independent simulations and returns the
// outcome distribution. Individual ledgers are not kept.
func (s *Server) handleSimulateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Runs < 1 {
		writeError(w, http.StatusBadRequest, "runs must be at least 1")
		return
	}

	seed := pickSeed(req.Seed)
	start := time.Now()
	result, err := simulate.RunBatch(r.Context(), req.StrategyParams, req.Runs, seed)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	observability.RecordBatch(req.Runs, req.TradeCount, time.Since(start).Seconds())
	s.recordRun()

	writeJSON(w, http.StatusOK, BatchResponse{
		Seed:    seed,
		Params:  req.StrategyParams,
		Summary: result.Summary,
	})
}

// handleStreaks returns the losing-streak table for a sample size.
func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	sampleSize, err := strconv.Atoi(r.URL.Query().Get("sample_size"))
	if err != nil || sampleSize < 1 {
		writeError(w, http.StatusBadRequest, "sample_size must be an integer >= 1")
		return
	}

	rows := streak.BuildTable(sampleSize)
	observability.RecordStreakTable()

	writeJSON(w, http.StatusOK, StreaksResponse{
		SampleSize: sampleSize,
		Rows:       rows,
	})
}

// handleListRuns returns stored runs, most recent first, without ledgers.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	items := make([]RunListItem, 0, len(runs))
	for _, run := range runs {
		items = append(items, RunListItem{
			RunID:     run.RunID,
			Params:    run.Params,
			Seed:      run.Seed,
			Summary:   run.Summary,
			CreatedAt: run.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, items)
}

// handleGetRun returns a stored run with its full ledger.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")

	run, err := s.store.GetByID(r.Context(), runID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "run not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}

	writeJSON(w, http.StatusOK, run)
}

// pickSeed returns the requested seed, or a fresh random one.
func pickSeed(requested *uint64) uint64 {
	if requested != nil {
		return *requested
	}
	return rand.Uint64()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
