package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

type Service interface {
	CreateRegularPayment(ctx context.Context, p entity.RegularPayment) (entity.RegularPayment, error)
	RegularPayment(ctx context.Context, id uuid.UUID) (entity.RegularPayment, error)
	UpdateRegularPayment(ctx context.Context, id uuid.UUID, p entity.RegularPayment) (entity.RegularPayment, error)
	DeleteRegularPayment(ctx context.Context, id uuid.UUID) error
	RegularPayments(ctx context.Context, filter entity.RegularPaymentFilter) ([]entity.RegularPayment, error)

	CreateEntry(ctx context.Context, e entity.EntriesPayment) (entity.EntriesPayment, error)
	Entry(ctx context.Context, id uuid.UUID) (entity.EntriesPayment, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, amount decimal.Decimal, status entity.EntryStatus) (entity.EntriesPayment, error)
	UpdateEntryStatus(ctx context.Context, id uuid.UUID, status entity.EntryStatus) (entity.EntriesPayment, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	EntriesByRegularPayment(ctx context.Context, regularPaymentID uuid.UUID) ([]entity.EntriesPayment, error)
	IsWriteOffNeeded(ctx context.Context, regularPaymentID uuid.UUID) (bool, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Tags health
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	Health(w, r)
}

// Health answers liveness probes of every service in this repository.
func Health(w http.ResponseWriter, r *http.Request) {
	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(r.Context(), w, http.StatusInternalServerError, KindInternal, err, "health check failed")
	}
}

func sendMalformedBody(ctx context.Context, w http.ResponseWriter, err error) {
	SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidRequest, err, "Malformed JSON or invalid field types")
}

func sendTypeMismatch(ctx context.Context, w http.ResponseWriter, err error) {
	SendJSONErr(ctx, w, http.StatusBadRequest, KindTypeMismatch, err, "Invalid request parameter type")
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.FromString(chi.URLParam(r, name))
}
