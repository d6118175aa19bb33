package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateRegularPayment(ctx context.Context, p entity.RegularPayment) (entity.RegularPayment, error)
	RegularPayment(ctx context.Context, id uuid.UUID) (entity.RegularPayment, error)
	UpdateRegularPayment(ctx context.Context, p entity.RegularPayment) error
	DeleteRegularPayment(ctx context.Context, id uuid.UUID) error
	RegularPayments(ctx context.Context, filter entity.RegularPaymentFilter) ([]entity.RegularPayment, error)

	CreateEntry(ctx context.Context, e entity.EntriesPayment) (entity.EntriesPayment, error)
	Entry(ctx context.Context, id uuid.UUID) (entity.EntriesPayment, error)
	UpdateEntry(ctx context.Context, e entity.EntriesPayment) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	EntriesByRegularPayment(ctx context.Context, regularPaymentID uuid.UUID) ([]entity.EntriesPayment, error)
}

type Producer interface {
	SendEntryCreated(ctx context.Context, e entity.EntriesPayment)
	SendEntryStatusChanged(ctx context.Context, e entity.EntriesPayment)
}

type Service struct {
	repo     Repository
	producer Producer
	now      func() time.Time
}

func New(repo Repository, producer Producer) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
		now:      time.Now,
	}
}

// WithClock replaces the time source used for timestamps and write-off checks.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
