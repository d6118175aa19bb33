package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// RegularPayment is a recurring payment agreement between a payer and a beneficiary.
type RegularPayment struct {
	ID              uuid.UUID
	PIB             string // payer full name
	IPN             string // payer tax id
	IBAN            string
	MFO             string // bank routing code
	EDRPOU          string // counterparty tax id
	BeneficiaryName string
	DebitPeriod     DebitPeriod
	PaymentAmount   decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RegularPaymentFilter selects agreements by payer or counterparty tax id.
// IPN wins when both are set.
type RegularPaymentFilter struct {
	IPN    *string
	EDRPOU *string
}
