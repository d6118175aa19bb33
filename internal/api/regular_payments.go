package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

type RegularPaymentRequest struct {
	PIB             string             `json:"PIB"`
	IPN             string             `json:"IPN"`
	IBAN            string             `json:"IBAN"`
	MFO             string             `json:"MFO"`
	EDRPOU          string             `json:"EDRPOU"`
	BeneficiaryName string             `json:"beneficiaryName"`
	DebitPeriod     entity.DebitPeriod `json:"debitPeriod" swaggertype:"string" example:"1m"`
	PaymentAmount   decimal.Decimal    `json:"paymentAmount" swaggertype:"string" example:"150.25"`
}

func (r RegularPaymentRequest) toEntity() entity.RegularPayment {
	return entity.RegularPayment{
		PIB:             r.PIB,
		IPN:             r.IPN,
		IBAN:            r.IBAN,
		MFO:             r.MFO,
		EDRPOU:          r.EDRPOU,
		BeneficiaryName: r.BeneficiaryName,
		DebitPeriod:     r.DebitPeriod,
		PaymentAmount:   r.PaymentAmount,
	}
}

type RegularPaymentResponse struct {
	ID              uuid.UUID          `json:"id"`
	PIB             string             `json:"PIB"`
	IPN             string             `json:"IPN"`
	IBAN            string             `json:"IBAN"`
	MFO             string             `json:"MFO"`
	EDRPOU          string             `json:"EDRPOU"`
	BeneficiaryName string             `json:"beneficiaryName"`
	DebitPeriod     entity.DebitPeriod `json:"debitPeriod" swaggertype:"string" example:"1d"`
	PaymentAmount   decimal.Decimal    `json:"paymentAmount" swaggertype:"string" example:"150.25"`
}

func regularPaymentToAPI(p entity.RegularPayment) RegularPaymentResponse {
	return RegularPaymentResponse{
		ID:              p.ID,
		PIB:             p.PIB,
		IPN:             p.IPN,
		IBAN:            p.IBAN,
		MFO:             p.MFO,
		EDRPOU:          p.EDRPOU,
		BeneficiaryName: p.BeneficiaryName,
		DebitPeriod:     p.DebitPeriod,
		PaymentAmount:   p.PaymentAmount,
	}
}

// CreateRegularPayment
// @Summary Create regular payment
// @Tags regular-payments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body RegularPaymentRequest true "Regular payment"
// @Success 201 {object} RegularPaymentResponse
// @Failure 400 {object} ErrorResponse "Validation error or malformed JSON"
// @Failure 500 {object} ErrorResponse
// @Router /regular-payments [post]
func (h *Handler) CreateRegularPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegularPaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendMalformedBody(ctx, w, err)
		return
	}

	p, err := h.s.CreateRegularPayment(ctx, req.toEntity())
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, regularPaymentToAPI(p))
}

// RegularPayment
// @Summary Get regular payment
// @Tags regular-payments
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Regular payment ID (UUID)"
// @Success 200 {object} RegularPaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /regular-payments/{id} [get]
func (h *Handler) RegularPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	p, err := h.s.RegularPayment(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, regularPaymentToAPI(p))
}

// UpdateRegularPayment
// @Summary Update regular payment
// @Tags regular-payments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Regular payment ID (UUID)"
// @Param request body RegularPaymentRequest true "Regular payment"
// @Success 200 {object} RegularPaymentResponse
// @Failure 400 {object} ErrorResponse "Validation error or malformed JSON"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /regular-payments/{id} [put]
func (h *Handler) UpdateRegularPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	var req RegularPaymentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendMalformedBody(ctx, w, err)
		return
	}

	p, err := h.s.UpdateRegularPayment(ctx, id, req.toEntity())
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, regularPaymentToAPI(p))
}

// DeleteRegularPayment
// @Summary Delete regular payment
// @Tags regular-payments
// @Security ApiKeyAuth
// @Param id path string true "Regular payment ID (UUID)"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid ID or payment still has entries"
// @Router /regular-payments/{id} [delete]
func (h *Handler) DeleteRegularPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		sendTypeMismatch(ctx, w, err)
		return
	}

	err = h.s.DeleteRegularPayment(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegularPayments
// @Summary List regular payments
// @Description Filters by payer tax id (ipn) or counterparty tax id (edrpou); ipn wins when both are given.
// @Tags regular-payments
// @Security ApiKeyAuth
// @Produce json
// @Param ipn query string false "Payer tax id"
// @Param edrpou query string false "Counterparty tax id"
// @Success 200 {array} RegularPaymentResponse
// @Router /regular-payments [get]
func (h *Handler) RegularPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter entity.RegularPaymentFilter

	q := r.URL.Query()
	if q.Has("ipn") {
		ipn := q.Get("ipn")
		filter.IPN = &ipn
	} else if q.Has("edrpou") {
		edrpou := q.Get("edrpou")
		filter.EDRPOU = &edrpou
	}

	payments, err := h.s.RegularPayments(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	res := make([]RegularPaymentResponse, 0, len(payments))
	for _, p := range payments {
		res = append(res, regularPaymentToAPI(p))
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
