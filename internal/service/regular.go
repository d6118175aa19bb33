package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

func (s *Service) CreateRegularPayment(ctx context.Context, p entity.RegularPayment) (entity.RegularPayment, error) {
	err := ValidateRegularPayment(p)
	if err != nil {
		return entity.RegularPayment{}, err
	}

	now := s.now()

	p.ID = uuid.Must(uuid.NewV4())
	p.CreatedAt = now
	p.UpdatedAt = now

	p, err = s.repo.CreateRegularPayment(ctx, p)
	if err != nil {
		return entity.RegularPayment{}, fmt.Errorf("create regular payment: %w", err)
	}

	slog.InfoContext(ctx, "regular payment created", "regular_payment_id", p.ID, "debit_period", p.DebitPeriod.String())

	return p, nil
}

func (s *Service) RegularPayment(ctx context.Context, id uuid.UUID) (entity.RegularPayment, error) {
	p, err := s.repo.RegularPayment(ctx, id)
	if err != nil {
		return entity.RegularPayment{}, fmt.Errorf("get regular payment %s: %w", id, err)
	}

	return p, nil
}

// UpdateRegularPayment overwrites every mutable field of an existing agreement.
func (s *Service) UpdateRegularPayment(ctx context.Context, id uuid.UUID, upd entity.RegularPayment) (entity.RegularPayment, error) {
	p, err := s.repo.RegularPayment(ctx, id)
	if err != nil {
		return entity.RegularPayment{}, fmt.Errorf("get regular payment %s: %w", id, err)
	}

	err = ValidateRegularPayment(upd)
	if err != nil {
		return entity.RegularPayment{}, err
	}

	p.PIB = upd.PIB
	p.IPN = upd.IPN
	p.IBAN = upd.IBAN
	p.MFO = upd.MFO
	p.EDRPOU = upd.EDRPOU
	p.BeneficiaryName = upd.BeneficiaryName
	p.DebitPeriod = upd.DebitPeriod
	p.PaymentAmount = upd.PaymentAmount
	p.UpdatedAt = s.now()

	err = s.repo.UpdateRegularPayment(ctx, p)
	if err != nil {
		return entity.RegularPayment{}, fmt.Errorf("update regular payment %s: %w", id, err)
	}

	return p, nil
}

func (s *Service) DeleteRegularPayment(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteRegularPayment(ctx, id)
	if err != nil {
		return fmt.Errorf("delete regular payment %s: %w", id, err)
	}

	return nil
}

func (s *Service) RegularPayments(ctx context.Context, filter entity.RegularPaymentFilter) ([]entity.RegularPayment, error) {
	payments, err := s.repo.RegularPayments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list regular payments: %w", err)
	}

	return payments, nil
}
