package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
	"github.com/OleksandrRym/RegularPaymentsSystem/internal/mocks"
	"github.com/OleksandrRym/RegularPaymentsSystem/internal/service"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*service.Service, *mocks.MockRepository, *mocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.New(repo, producer).WithClock(func() time.Time { return now })

	return s, repo, producer
}

func validRegularPayment() entity.RegularPayment {
	return entity.RegularPayment{
		PIB:             "Shevchenko Taras",
		IPN:             "123456789",
		IBAN:            "UA213223130000026007233566001",
		MFO:             "322313",
		EDRPOU:          "12345678",
		BeneficiaryName: "Kyivenergo",
		DebitPeriod:     entity.DebitPeriod(24 * time.Hour),
		PaymentAmount:   decimal.RequireFromString("150.25"),
	}
}

func TestService_IsWriteOffNeeded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, tt := range []struct {
		name    string
		period  time.Duration
		entries []entity.EntriesPayment
		want    bool
	}{
		{
			name:   "no entries",
			period: 24 * time.Hour,
			want:   true,
		},
		{
			name:    "daily period, last entry two days ago",
			period:  24 * time.Hour,
			entries: []entity.EntriesPayment{{DateOfPayment: now.Add(-48 * time.Hour)}},
			want:    true,
		},
		{
			name:    "two day period, last entry an hour ago",
			period:  48 * time.Hour,
			entries: []entity.EntriesPayment{{DateOfPayment: now.Add(-time.Hour)}},
			want:    false,
		},
		{
			name:    "exactly due",
			period:  time.Hour,
			entries: []entity.EntriesPayment{{DateOfPayment: now.Add(-time.Hour)}},
			want:    false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, repo, _ := newService(t)

			id := uuid.Must(uuid.NewV4())
			repo.EXPECT().RegularPayment(ctx, id).
				Return(entity.RegularPayment{ID: id, DebitPeriod: entity.DebitPeriod(tt.period)}, nil)
			repo.EXPECT().EntriesByRegularPayment(ctx, id).Return(tt.entries, nil)

			got, err := s.IsWriteOffNeeded(ctx, id)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_IsWriteOffNeeded_NotFound(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	repo.EXPECT().RegularPayment(gomock.Any(), gomock.Any()).Return(entity.RegularPayment{}, entity.ErrNotFound)

	_, err := s.IsWriteOffNeeded(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_CreateEntry(t *testing.T) {
	t.Parallel()

	s, repo, producer := newService(t)
	ctx := context.Background()

	rpID := uuid.Must(uuid.NewV4())
	in := entity.EntriesPayment{
		RegularPaymentID: rpID,
		DateOfPayment:    now,
		Amount:           decimal.RequireFromString("150.25"),
		Status:           entity.EntryStatusActive,
	}

	repo.EXPECT().RegularPayment(ctx, rpID).Return(entity.RegularPayment{ID: rpID}, nil)
	repo.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e entity.EntriesPayment) (entity.EntriesPayment, error) {
			require.NotEqual(t, uuid.Nil, e.ID)
			return e, nil
		})
	producer.EXPECT().SendEntryCreated(ctx, gomock.Any())

	got, err := s.CreateEntry(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)
	require.Equal(t, rpID, got.RegularPaymentID)
}

func TestService_CreateEntry_Invalid(t *testing.T) {
	t.Parallel()

	rpID := uuid.Must(uuid.NewV4())

	valid := entity.EntriesPayment{
		RegularPaymentID: rpID,
		DateOfPayment:    now,
		Amount:           decimal.RequireFromString("10"),
		Status:           entity.EntryStatusActive,
	}

	t.Run("bad status", func(t *testing.T) {
		t.Parallel()

		s, _, _ := newService(t)

		e := valid
		e.Status = "X"

		_, err := s.CreateEntry(context.Background(), e)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("bad amount", func(t *testing.T) {
		t.Parallel()

		s, _, _ := newService(t)

		e := valid
		e.Amount = decimal.RequireFromString("0.001")

		_, err := s.CreateEntry(context.Background(), e)
		require.ErrorIs(t, err, entity.ErrValidation)
	})

	t.Run("unknown regular payment", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)

		repo.EXPECT().RegularPayment(gomock.Any(), rpID).Return(entity.RegularPayment{}, entity.ErrNotFound)

		_, err := s.CreateEntry(context.Background(), valid)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
		require.NotErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_UpdateEntryStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	stored := entity.EntriesPayment{
		ID:               id,
		RegularPaymentID: uuid.Must(uuid.NewV4()),
		DateOfPayment:    now,
		Amount:           decimal.RequireFromString("10"),
		Status:           entity.EntryStatusActive,
	}

	t.Run("reversed", func(t *testing.T) {
		t.Parallel()

		s, repo, producer := newService(t)

		want := stored
		want.Status = entity.EntryStatusStornovana

		repo.EXPECT().Entry(ctx, id).Return(stored, nil)
		repo.EXPECT().UpdateEntry(ctx, want).Return(nil)
		producer.EXPECT().SendEntryStatusChanged(ctx, want)

		got, err := s.UpdateEntryStatus(ctx, id, entity.EntryStatusStornovana)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("invalid status leaves the entry untouched", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)

		repo.EXPECT().Entry(ctx, id).Return(stored, nil)
		repo.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.UpdateEntryStatus(ctx, id, "X")
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)

		repo.EXPECT().Entry(ctx, id).Return(entity.EntriesPayment{}, entity.ErrNotFound)

		_, err := s.UpdateEntryStatus(ctx, id, entity.EntryStatusActive)
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_UpdateEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	stored := entity.EntriesPayment{
		ID:            id,
		DateOfPayment: now,
		Amount:        decimal.RequireFromString("10"),
		Status:        entity.EntryStatusActive,
	}

	t.Run("amount only does not emit status event", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)

		repo.EXPECT().Entry(ctx, id).Return(stored, nil)
		repo.EXPECT().UpdateEntry(ctx, gomock.Any()).Return(nil)

		got, err := s.UpdateEntry(ctx, id, decimal.RequireFromString("20.50"), entity.EntryStatusActive)
		require.NoError(t, err)
		require.Equal(t, "20.5", got.Amount.String())
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)

		repo.EXPECT().Entry(ctx, id).Return(stored, nil)

		_, err := s.UpdateEntry(ctx, id, decimal.RequireFromString("20"), "Z")
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)

		repo.EXPECT().Entry(ctx, id).Return(entity.EntriesPayment{}, entity.ErrNotFound)

		_, err := s.UpdateEntry(ctx, id, decimal.RequireFromString("20"), entity.EntryStatusActive)
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_CreateRegularPayment(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().CreateRegularPayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p entity.RegularPayment) (entity.RegularPayment, error) {
			return p, nil
		})

	got, err := s.CreateRegularPayment(ctx, validRegularPayment())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)
	require.Equal(t, now, got.CreatedAt)
}

func TestService_CreateRegularPayment_Invalid(t *testing.T) {
	t.Parallel()

	s, _, _ := newService(t)

	p := validRegularPayment()
	p.IPN = "12345"

	_, err := s.CreateRegularPayment(context.Background(), p)
	require.ErrorIs(t, err, entity.ErrValidation)
	require.Contains(t, err.Error(), "IPN must be exactly 9 digits")
}

func TestService_UpdateRegularPayment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)

		stored := validRegularPayment()
		stored.ID = id
		stored.CreatedAt = now.Add(-time.Hour)

		upd := validRegularPayment()
		upd.BeneficiaryName = "Kyivvodokanal"

		repo.EXPECT().RegularPayment(ctx, id).Return(stored, nil)
		repo.EXPECT().UpdateRegularPayment(ctx, gomock.Any()).Return(nil)

		got, err := s.UpdateRegularPayment(ctx, id, upd)
		require.NoError(t, err)
		require.Equal(t, id, got.ID)
		require.Equal(t, "Kyivvodokanal", got.BeneficiaryName)
		require.Equal(t, stored.CreatedAt, got.CreatedAt)
		require.Equal(t, now, got.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, repo, _ := newService(t)

		repo.EXPECT().RegularPayment(ctx, id).Return(entity.RegularPayment{}, entity.ErrNotFound)

		_, err := s.UpdateRegularPayment(ctx, id, validRegularPayment())
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_DeleteEntry_PropagatesError(t *testing.T) {
	t.Parallel()

	s, repo, _ := newService(t)

	dbErr := errors.New("connection reset")
	repo.EXPECT().DeleteEntry(gomock.Any(), gomock.Any()).Return(dbErr)

	err := s.DeleteEntry(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, dbErr)
}
