package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/matchday/teamdraft/internal/adapters/repository"
	"github.com/matchday/teamdraft/internal/domain/roster"
	"github.com/matchday/teamdraft/internal/domain/strategy"
)

// JobsHandler handles asynchronous balance jobs.
type JobsHandler struct {
	deps          Dependencies
	validator     *roster.Validator
	maxRosterSize int
}

// NewJobsHandler creates a new jobs handler.
func NewJobsHandler(deps Dependencies, validator *roster.Validator, maxRosterSize int) *JobsHandler {
	return &JobsHandler{
		deps:          deps,
		validator:     validator,
		maxRosterSize: maxRosterSize,
	}
}

// HandleSubmitJob handles POST /jobs requests: validate, enqueue, and
// acknowledge with the assigned job id. A full queue answers 429.
func (h *JobsHandler) HandleSubmitJob(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_job"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req balanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	job, err := req.toJob(r.Context(), h.validator, h.maxRosterSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	// Reject invalid partition parameters before enqueueing; the worker
	// would only fail the job later with the same condition.
	name := job.Strategy
	if name == "" {
		name = strategy.NameGreedy
	}
	if _, err := strategy.Get(name); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if len(job.Roster) == 0 || job.TeamCount < 2 {
		writeError(w, http.StatusBadRequest, "invalid_input", NewKind(op, strategy.ErrInvalidInput))
		return
	}

	jobID, ok := h.deps.Submit(r.Context(), job)
	if !ok {
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{JobID: jobID, Status: "accepted"})
}

// HandleGetJob handles GET /jobs/{id} requests. An unknown id and a job
// still in flight both answer 404; poll until the result lands.
func (h *JobsHandler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_job"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	jobID := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if jobID == "" || strings.Contains(jobID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	res, err := h.deps.Result(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(res))
}
