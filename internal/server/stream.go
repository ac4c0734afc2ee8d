package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/domain"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/insights"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/observability"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/outcome"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/simulate"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/stats"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// StreamMessage is one websocket frame: either a single trade or, once
// the run finishes, the summary with insights.
type StreamMessage struct {
	Type     string                    `json:"type"`
	Trade    *domain.TradeRecord       `json:"trade,omitempty"`
	Summary  *domain.SimulationSummary `json:"summary,omitempty"`
	Insights []domain.Insight          `json:"insights,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

// handleSimulateStream runs one simulation and pushes each trade over a
// websocket as it is produced, followed by a final summary frame. The
// client sends a single SimulateRequest after the upgrade.
func (s *Server) handleSimulateStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req SimulateRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(StreamMessage{Type: "error", Error: "invalid request"})
		return
	}
	if err := req.Validate(); err != nil {
		conn.WriteJSON(StreamMessage{Type: "error", Error: err.Error()})
		return
	}

	seed := pickSeed(req.Seed)
	src := outcome.NewBernoulli(req.WinRate, seed)

	start := time.Now()
	records := simulate.Run(req.StrategyParams, src)
	for _, rec := range records {
		if err := conn.WriteJSON(StreamMessage{Type: "trade", Trade: rec}); err != nil {
			s.log.Debug().Err(err).Msg("stream client went away")
			return
		}
	}

	summary := stats.Summarize(req.StrategyParams, records)
	observability.RecordSimulation(len(records), time.Since(start).Seconds())
	s.recordRun()

	conn.WriteJSON(StreamMessage{
		Type:     "summary",
		Summary:  summary,
		Insights: insights.Evaluate(summary),
	})
}
