package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

var (
	ipnRe    = regexp.MustCompile(`^\d{9}$`)
	ibanRe   = regexp.MustCompile(`^UA\d{27}$`)
	mfoRe    = regexp.MustCompile(`^\d{6}$`)
	edrpouRe = regexp.MustCompile(`^\d{8}$`)

	minAmount = decimal.RequireFromString("0.01")
)

const (
	regularAmountIntDigits = 12
	entryAmountIntDigits   = 15
	amountFractionDigits   = 2
)

// ValidateRegularPayment checks every field of an agreement and reports all violations at once.
func ValidateRegularPayment(p entity.RegularPayment) error {
	var errs []error

	switch {
	case p.PIB == "":
		errs = append(errs, errors.New("PIB is required"))
	case !lengthBetween(p.PIB, 2, 100): //nolint:mnd
		errs = append(errs, errors.New("PIB length must be between 2 and 100 characters"))
	}

	errs = appendPattern(errs, p.IPN, ipnRe, "IPN is required", "IPN must be exactly 9 digits")
	errs = appendPattern(errs, p.IBAN, ibanRe, "IBAN is required", "IBAN must start with 'UA' followed by 27 digits")
	errs = appendPattern(errs, p.MFO, mfoRe, "MFO is required", "MFO must be exactly 6 digits")
	errs = appendPattern(errs, p.EDRPOU, edrpouRe, "EDRPOU is required", "EDRPOU must be exactly 8 digits")

	switch {
	case p.BeneficiaryName == "":
		errs = append(errs, errors.New("Beneficiary name is required")) //nolint:stylecheck
	case !lengthBetween(p.BeneficiaryName, 2, 255): //nolint:mnd
		errs = append(errs, errors.New("Beneficiary name must be between 2 and 255 characters")) //nolint:stylecheck
	}

	if p.DebitPeriod <= 0 {
		errs = append(errs, errors.New("Debit period is required and must be positive")) //nolint:stylecheck
	}

	errs = appendAmount(errs, p.PaymentAmount, "Payment amount", regularAmountIntDigits)

	return joinValidation(errs)
}

// ValidateEntry checks the fields of an entry except its status,
// which is reported separately as an invalid argument.
func ValidateEntry(e entity.EntriesPayment) error {
	var errs []error

	if e.RegularPaymentID == uuid.Nil {
		errs = append(errs, errors.New("Payment ID is required")) //nolint:stylecheck
	}

	if e.DateOfPayment.IsZero() {
		errs = append(errs, errors.New("Payment date is required")) //nolint:stylecheck
	}

	errs = appendAmount(errs, e.Amount, "Amount", entryAmountIntDigits)

	return joinValidation(errs)
}

// ValidateAmount checks an entry amount on update.
func ValidateAmount(amount decimal.Decimal) error {
	return joinValidation(appendAmount(nil, amount, "Amount", entryAmountIntDigits))
}

func appendPattern(errs []error, v string, re *regexp.Regexp, requiredMsg, patternMsg string) []error {
	switch {
	case v == "":
		return append(errs, errors.New(requiredMsg))
	case !re.MatchString(v):
		return append(errs, errors.New(patternMsg))
	}

	return errs
}

func appendAmount(errs []error, amount decimal.Decimal, field string, intDigits int) []error {
	if amount.LessThan(minAmount) {
		return append(errs, fmt.Errorf("%s must be greater than zero", field))
	}

	if !hasDigits(amount, intDigits, amountFractionDigits) {
		return append(errs, fmt.Errorf("%s must have max %d digits and %d decimal places", field, intDigits, amountFractionDigits))
	}

	return errs
}

// hasDigits reports whether d fits into integer digits before and fraction digits after the point.
// Trailing fractional zeros are ignored.
func hasDigits(d decimal.Decimal, integer, fraction int) bool {
	if !d.Equal(d.Truncate(int32(fraction))) { //nolint:gosec
		return false
	}

	return len(d.Abs().Truncate(0).String()) <= integer
}

func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minLen && n <= maxLen
}

func joinValidation(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("%w: %s", entity.ErrValidation, strings.Join(msgs, "; "))
}
