// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matchday/teamdraft/internal/adapters/repository"
	"github.com/matchday/teamdraft/internal/domain/model"
	"github.com/matchday/teamdraft/internal/domain/roster"
	"github.com/matchday/teamdraft/internal/domain/strategy"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Balance runs a job synchronously and returns its result.
	Balance(ctx context.Context, job model.Job) (repository.Result, error)

	// Submit enqueues a job for async processing, returning the assigned
	// job id. Returns false on queue backpressure.
	Submit(ctx context.Context, job model.Job) (string, bool)

	// Result returns the stored result for a job id.
	Result(ctx context.Context, jobID string) (repository.Result, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	balanceHandler *BalanceHandler
	jobsHandler    *JobsHandler
}

// NewServer creates a new API server with all handlers. maxRosterSize
// caps the number of players accepted per request.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxRosterSize int) *Server {
	validator := roster.NewValidator()
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		balanceHandler: NewBalanceHandler(deps, validator, maxRosterSize),
		jobsHandler:    NewJobsHandler(deps, validator, maxRosterSize),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/balance", MetricsMiddleware(s.balanceHandler.HandleBalance, "balance"))
	mux.HandleFunc("/jobs", MetricsMiddleware(s.jobsHandler.HandleSubmitJob, "jobs"))
	mux.HandleFunc("/jobs/", MetricsMiddleware(s.jobsHandler.HandleGetJob, "job_result"))
}

// playerPayload mirrors one roster record on the wire.
type playerPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Speed     int    `json:"speed"`
	Technical int    `json:"technical"`
	Stamina   int    `json:"stamina"`
}

// balanceRequest is the body of POST /balance and POST /jobs.
type balanceRequest struct {
	Roster    []playerPayload `json:"roster"`
	TeamCount int             `json:"team_count"`
	Strategy  string          `json:"strategy,omitempty"`
	Shuffle   bool            `json:"shuffle,omitempty"`
	Seed      *int64          `json:"seed,omitempty"`
}

// toJob converts the request into a domain job, validating fields along
// the way. Field-level checks happen here, at the boundary; the core
// assumes they passed.
func (r balanceRequest) toJob(ctx context.Context, v *roster.Validator, maxRosterSize int) (model.Job, error) {
	if len(r.Roster) > maxRosterSize {
		return model.Job{}, NewKind("api.to_job", ErrRosterTooLarge)
	}

	players := make([]*model.Player, len(r.Roster))
	for i, p := range r.Roster {
		players[i] = &model.Player{
			ID:        p.ID,
			Name:      p.Name,
			Speed:     p.Speed,
			Technical: p.Technical,
			Stamina:   p.Stamina,
		}
	}
	if err := v.ValidateRoster(ctx, players); err != nil {
		return model.Job{}, err
	}

	return model.Job{
		Roster:    players,
		TeamCount: r.TeamCount,
		Strategy:  r.Strategy,
		Shuffle:   r.Shuffle,
		Seed:      r.Seed,
	}, nil
}

// teamPayload is one team in a balance response.
type teamPayload struct {
	Name          string          `json:"name"`
	Players       []playerPayload `json:"players"`
	Size          int             `json:"size"`
	MeanSpeed     float64         `json:"mean_speed"`
	MeanTechnical float64         `json:"mean_technical"`
	MeanStamina   float64         `json:"mean_stamina"`
	MeanOverall   float64         `json:"mean_overall"`
}

// balanceResponse is the body returned for a completed job.
type balanceResponse struct {
	JobID    string        `json:"job_id,omitempty"`
	Strategy string        `json:"strategy"`
	Score    float64       `json:"score"`
	Teams    []teamPayload `json:"teams"`
}

func toResponse(res repository.Result) balanceResponse {
	teams := make([]teamPayload, len(res.Teams))
	for i, t := range res.Teams {
		players := make([]playerPayload, len(t.Players))
		for j, p := range t.Players {
			players[j] = playerPayload{
				ID:        p.ID,
				Name:      p.Name,
				Speed:     p.Speed,
				Technical: p.Technical,
				Stamina:   p.Stamina,
			}
		}
		teams[i] = teamPayload{
			Name:          t.Name,
			Players:       players,
			Size:          t.Size(),
			MeanSpeed:     t.MeanSpeed(),
			MeanTechnical: t.MeanTechnical(),
			MeanStamina:   t.MeanStamina(),
			MeanOverall:   t.MeanOverall(),
		}
	}
	return balanceResponse{
		JobID:    res.JobID,
		Strategy: res.Strategy,
		Score:    res.Score,
		Teams:    teams,
	}
}

type ackResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isInvalidInput reports whether err should map to a 400 response.
func isInvalidInput(err error) bool {
	return errors.Is(err, strategy.ErrInvalidInput) ||
		errors.Is(err, roster.ErrInvalidPlayer) ||
		errors.Is(err, ErrRosterTooLarge) ||
		errors.Is(err, ErrBadRequest)
}
