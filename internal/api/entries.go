package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

type EntryRequest struct {
	RegularPaymentID uuid.UUID       `json:"regularPaymentId" swaggertype:"string" format:"uuid"`
	DateOfPayment    time.Time       `json:"dateOfPayment" example:"2024-05-10T12:00:00Z"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string" example:"150.25"`
	Status           string          `json:"status" example:"A"`
}

func (r EntryRequest) toEntity() entity.EntriesPayment {
	return entity.EntriesPayment{
		RegularPaymentID: r.RegularPaymentID,
		DateOfPayment:    r.DateOfPayment,
		Amount:           r.Amount,
		Status:           entity.EntryStatus(r.Status),
	}
}

type EntryResponse struct {
	ID               uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"`
	RegularPaymentID uuid.UUID       `json:"regularPaymentId" swaggertype:"string" format:"uuid"`
	DateOfPayment    time.Time       `json:"dateOfPayment"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string" example:"150.25"`
	Status           string          `json:"status" example:"A"`
}

func entryToAPI(e entity.EntriesPayment) EntryResponse {
	return EntryResponse{
		ID:               e.ID,
		RegularPaymentID: e.RegularPaymentID,
		DateOfPayment:    e.DateOfPayment,
		Amount:           e.Amount,
		Status:           e.Status.String(),
	}
}

// CreateEntry
// @Summary Create payment entry
// @Tags entrie-payments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body EntryRequest true "Entry"
// @Success 201 {object} EntryResponse
// @Failure 400 {object} ErrorResponse "Validation error, unknown regular payment or bad status"
// @Router /entrie-payments [post]
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EntryRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendMalformedBody(ctx, w, err)
		return
	}

	e, err := h.s.CreateEntry(ctx, req.toEntity())
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, entryToAPI(e))
}

// Entry
// @Summary Get payment entry
// @Tags entrie-payments
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Success 200 {object} EntryResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /entrie-payments/{id} [get]
func (h *Handler) Entry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	e, err := h.s.Entry(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, entryToAPI(e))
}

// UpdateEntry
// @Summary Update payment entry
// @Description Only amount and status are changed.
// @Tags entrie-payments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param request body EntryRequest true "Entry"
// @Success 200 {object} EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /entrie-payments/{id} [put]
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	var req EntryRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendMalformedBody(ctx, w, err)
		return
	}

	e, err := h.s.UpdateEntry(ctx, id, req.Amount, entity.EntryStatus(req.Status))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, entryToAPI(e))
}

// UpdateEntryStatus
// @Summary Change payment entry status
// @Tags entrie-payments
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param status query string true "New status: A (Active) or S (Stornovana)"
// @Success 200 {object} EntryResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /entrie-payments/{id} [patch]
func (h *Handler) UpdateEntryStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	status := r.URL.Query().Get("status")
	if len(status) != 1 {
		sendTypeMismatch(ctx, w, errors.New("status must be a single character"))
		return
	}

	e, err := h.s.UpdateEntryStatus(ctx, id, entity.EntryStatus(status))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, entryToAPI(e))
}

// DeleteEntry
// @Summary Delete payment entry
// @Tags entrie-payments
// @Security ApiKeyAuth
// @Param id path string true "Entry ID (UUID)"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Router /entrie-payments/{id} [delete]
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	err = h.s.DeleteEntry(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EntriesByRegularPayment
// @Summary List entries of a regular payment
// @Tags entrie-payments
// @Security ApiKeyAuth
// @Produce json
// @Param paymentId query string true "Regular payment ID (UUID)"
// @Success 200 {array} EntryResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid paymentId"
// @Router /entrie-payments [get]
func (h *Handler) EntriesByRegularPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	if !q.Has("paymentId") {
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidRequest, nil, "Required parameter 'paymentId' is missing")
		return
	}

	id, err := uuid.FromString(q.Get("paymentId"))
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	entries, err := h.s.EntriesByRegularPayment(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	res := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, entryToAPI(e))
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// CheckWriteOff
// @Summary Check whether a regular payment is due
// @Description True when the payment has no entries yet or its debit period has elapsed since the latest one.
// @Tags entrie-payments
// @Security ApiKeyAuth
// @Produce json
// @Param id query string true "Regular payment ID (UUID)"
// @Success 200 {boolean} boolean
// @Failure 400 {object} ErrorResponse "Missing or invalid id"
// @Failure 404 {object} ErrorResponse "Regular payment not found"
// @Router /entrie-payments/check [get]
func (h *Handler) CheckWriteOff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	if !q.Has("id") {
		SendJSONErr(ctx, w, http.StatusBadRequest, KindInvalidRequest, nil, "Required parameter 'id' is missing")
		return
	}

	id, err := uuid.FromString(q.Get("id"))
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	due, err := h.s.IsWriteOffNeeded(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, due)
}
