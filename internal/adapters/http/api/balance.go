package api

import (
	"encoding/json"
	"net/http"

	"github.com/matchday/teamdraft/internal/domain/roster"
)

// BalanceHandler handles synchronous balance requests.
type BalanceHandler struct {
	deps          Dependencies
	validator     *roster.Validator
	maxRosterSize int
}

// NewBalanceHandler creates a new balance handler.
func NewBalanceHandler(deps Dependencies, validator *roster.Validator, maxRosterSize int) *BalanceHandler {
	return &BalanceHandler{
		deps:          deps,
		validator:     validator,
		maxRosterSize: maxRosterSize,
	}
}

// HandleBalance handles POST /balance requests: partition the roster
// now and return the teams and score in the response.
func (h *BalanceHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_balance"
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

	res, err := h.deps.Balance(r.Context(), job)
	if err != nil {
		if isInvalidInput(err) {
			writeError(w, http.StatusBadRequest, "invalid_input", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(res))
}
