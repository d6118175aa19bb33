package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

func (s *Service) CreateEntry(ctx context.Context, e entity.EntriesPayment) (entity.EntriesPayment, error) {
	err := ValidateEntry(e)
	if err != nil {
		return entity.EntriesPayment{}, err
	}

	err = e.Status.Validate()
	if err != nil {
		return entity.EntriesPayment{}, err
	}

	_, err = s.repo.RegularPayment(ctx, e.RegularPaymentID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.EntriesPayment{}, fmt.Errorf("%w: regular payment %s not found", entity.ErrInvalidArgument, e.RegularPaymentID)
		}

		return entity.EntriesPayment{}, fmt.Errorf("get regular payment %s: %w", e.RegularPaymentID, err)
	}

	e.ID = uuid.Must(uuid.NewV4())

	e, err = s.repo.CreateEntry(ctx, e)
	if err != nil {
		return entity.EntriesPayment{}, fmt.Errorf("create entry: %w", err)
	}

	s.producer.SendEntryCreated(ctx, e)

	slog.InfoContext(ctx, "entry created",
		"entry_id", e.ID, "regular_payment_id", e.RegularPaymentID, "amount", e.Amount.String())

	return e, nil
}

func (s *Service) Entry(ctx context.Context, id uuid.UUID) (entity.EntriesPayment, error) {
	e, err := s.repo.Entry(ctx, id)
	if err != nil {
		return entity.EntriesPayment{}, fmt.Errorf("get entry %s: %w", id, err)
	}

	return e, nil
}

// UpdateEntry changes amount and status. Nothing is written when validation fails.
func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, amount decimal.Decimal, status entity.EntryStatus) (entity.EntriesPayment, error) {
	e, err := s.repo.Entry(ctx, id)
	if err != nil {
		return entity.EntriesPayment{}, fmt.Errorf("get entry %s: %w", id, err)
	}

	err = ValidateAmount(amount)
	if err != nil {
		return entity.EntriesPayment{}, err
	}

	err = status.Validate()
	if err != nil {
		return entity.EntriesPayment{}, err
	}

	statusChanged := e.Status != status

	e.Amount = amount
	e.Status = status

	err = s.repo.UpdateEntry(ctx, e)
	if err != nil {
		return entity.EntriesPayment{}, fmt.Errorf("update entry %s: %w", id, err)
	}

	if statusChanged {
		s.producer.SendEntryStatusChanged(ctx, e)
	}

	return e, nil
}

// UpdateEntryStatus changes only the status. Nothing is written when the status is invalid.
func (s *Service) UpdateEntryStatus(ctx context.Context, id uuid.UUID, status entity.EntryStatus) (entity.EntriesPayment, error) {
	e, err := s.repo.Entry(ctx, id)
	if err != nil {
		return entity.EntriesPayment{}, fmt.Errorf("get entry %s: %w", id, err)
	}

	err = status.Validate()
	if err != nil {
		return entity.EntriesPayment{}, err
	}

	statusChanged := e.Status != status
	e.Status = status

	err = s.repo.UpdateEntry(ctx, e)
	if err != nil {
		return entity.EntriesPayment{}, fmt.Errorf("update entry %s status: %w", id, err)
	}

	if statusChanged {
		s.producer.SendEntryStatusChanged(ctx, e)
	}

	return e, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("delete entry %s: %w", id, err)
	}

	return nil
}

func (s *Service) EntriesByRegularPayment(ctx context.Context, regularPaymentID uuid.UUID) ([]entity.EntriesPayment, error) {
	entries, err := s.repo.EntriesByRegularPayment(ctx, regularPaymentID)
	if err != nil {
		return nil, fmt.Errorf("list entries of regular payment %s: %w", regularPaymentID, err)
	}

	return entries, nil
}

// IsWriteOffNeeded reports whether a new entry is due for the regular payment now.
func (s *Service) IsWriteOffNeeded(ctx context.Context, regularPaymentID uuid.UUID) (bool, error) {
	p, err := s.repo.RegularPayment(ctx, regularPaymentID)
	if err != nil {
		return false, fmt.Errorf("get regular payment %s: %w", regularPaymentID, err)
	}

	entries, err := s.repo.EntriesByRegularPayment(ctx, regularPaymentID)
	if err != nil {
		return false, fmt.Errorf("list entries of regular payment %s: %w", regularPaymentID, err)
	}

	return entity.WriteOffDue(p.DebitPeriod, entries, s.now()), nil
}
