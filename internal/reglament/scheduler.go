package reglament

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=scheduler.go -destination=../mocks/scheduler.go -package=mocks

var ErrRunInProgress = errors.New("reglament run already in progress")

type PaymentClient interface {
	RegularPayments(ctx context.Context) ([]entity.RegularPayment, error)
	IsWriteOffNeeded(ctx context.Context, regularPaymentID uuid.UUID) (bool, error)
	CreateEntry(ctx context.Context, e entity.EntriesPayment) (entity.EntriesPayment, error)
}

// Scheduler creates an active entry for every regular payment whose debit
// period has elapsed. Runs never overlap: a second run started while one is
// executing fails with ErrRunInProgress.
type Scheduler struct {
	client PaymentClient
	mu     sync.Mutex
	now    func() time.Time
}

func NewScheduler(client PaymentClient) *Scheduler {
	return &Scheduler{
		client: client,
		now:    time.Now,
	}
}

func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

func (s *Scheduler) ProcessPayments(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrRunInProgress
	}
	defer s.mu.Unlock()

	ctx = logger.WithRunID(ctx, uuid.Must(uuid.NewV4()).String())
	started := s.now()

	payments, err := s.client.RegularPayments(ctx)
	if err != nil {
		return fmt.Errorf("list regular payments: %w", err)
	}

	slog.InfoContext(ctx, "reglament run started", "regular_payments", len(payments))

	var (
		errs    []error
		created int
	)

	for _, p := range payments {
		ok, err := s.process(ctx, p)
		if err != nil {
			slog.ErrorContext(ctx, "process regular payment", "regular_payment_id", p.ID, "error", err)
			errs = append(errs, fmt.Errorf("regular payment %s: %w", p.ID, err))

			continue
		}

		if ok {
			created++
		}
	}

	slog.InfoContext(ctx, "reglament run finished",
		"entries_created", created,
		"failed", len(errs),
		"duration", s.now().Sub(started).String(),
	)

	return errors.Join(errs...)
}

func (s *Scheduler) process(ctx context.Context, p entity.RegularPayment) (bool, error) {
	due, err := s.client.IsWriteOffNeeded(ctx, p.ID)
	if err != nil {
		return false, fmt.Errorf("check write-off: %w", err)
	}

	if !due {
		return false, nil
	}

	e, err := s.client.CreateEntry(ctx, entity.EntriesPayment{
		RegularPaymentID: p.ID,
		DateOfPayment:    s.now(),
		Amount:           p.PaymentAmount,
		Status:           entity.EntryStatusActive,
	})
	if err != nil {
		return false, fmt.Errorf("create entry: %w", err)
	}

	slog.InfoContext(ctx, "entry created", "regular_payment_id", p.ID, "entry_id", e.ID, "amount", e.Amount.String())

	return true, nil
}
