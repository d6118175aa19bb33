package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/reglament"
)

type Runner interface {
	ProcessPayments(ctx context.Context) error
}

type ReglamentHandler struct {
	runner Runner
}

func NewReglamentHandler(runner Runner) *ReglamentHandler {
	return &ReglamentHandler{
		runner: runner,
	}
}

type RunResponse struct {
	Status string `json:"status" example:"completed"`
}

// Run
// @Summary Run one poll over all regular payments
// @Tags reglament
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} RunResponse
// @Failure 409 {object} ErrorResponse "Another run is in progress"
// @Failure 503 {object} ErrorResponse "Payment service unreachable"
// @Router /reglament/run [post]
func (h *ReglamentHandler) Run(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.runner.ProcessPayments(ctx)
	if errors.Is(err, reglament.ErrRunInProgress) {
		SendJSONErr(ctx, w, http.StatusConflict, KindConflict, err, "A reglament run is already in progress")
		return
	}

	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, RunResponse{Status: "completed"})
}
