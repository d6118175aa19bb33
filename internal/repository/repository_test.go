package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
	"github.com/OleksandrRym/RegularPaymentsSystem/internal/repository"
	"github.com/OleksandrRym/RegularPaymentsSystem/pkg/postgres"
)

type RepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.Repository
}

func TestRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(RepositoryTestSuite))
}

func (ts *RepositoryTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		ts.T().Skip("TEST_POSTGRES_DSN is not set")
	}

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	ts.Require().NoError(err)

	ts.Require().NoError(postgres.UpMigrations(pool))

	ts.pool = pool
	ts.repo = repository.New(pool)
}

func (ts *RepositoryTestSuite) TearDownSuite() {
	if ts.pool != nil {
		ts.pool.Close()
	}
}

func (ts *RepositoryTestSuite) SetupTest() {
	ctx := context.Background()

	for _, table := range []string{"entries_payment", "regular_payment"} {
		_, err := ts.pool.Exec(ctx, "DELETE FROM "+table)
		ts.Require().NoError(err)
	}
}

func newRegularPayment(ipn, edrpou string) entity.RegularPayment {
	now := time.Now().UTC().Truncate(time.Millisecond)

	return entity.RegularPayment{
		ID:              uuid.Must(uuid.NewV4()),
		PIB:             "Shevchenko Taras",
		IPN:             ipn,
		IBAN:            "UA213223130000026007233566001",
		MFO:             "322313",
		EDRPOU:          edrpou,
		BeneficiaryName: "Kyivenergo",
		DebitPeriod:     entity.DebitPeriod(24 * time.Hour),
		PaymentAmount:   decimal.RequireFromString("150.25"),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (ts *RepositoryTestSuite) TestRegularPayment_CRUD() {
	ctx := context.Background()

	p := newRegularPayment("123456789", "12345678")

	_, err := ts.repo.CreateRegularPayment(ctx, p)
	ts.Require().NoError(err)

	got, err := ts.repo.RegularPayment(ctx, p.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(p.IPN, got.IPN)
	ts.Require().Equal(p.DebitPeriod, got.DebitPeriod)
	ts.Require().True(p.PaymentAmount.Equal(got.PaymentAmount))

	p.BeneficiaryName = "Kyivvodokanal"
	p.DebitPeriod = entity.DebitPeriod(time.Hour)
	ts.Require().NoError(ts.repo.UpdateRegularPayment(ctx, p))

	got, err = ts.repo.RegularPayment(ctx, p.ID)
	ts.Require().NoError(err)
	ts.Require().Equal("Kyivvodokanal", got.BeneficiaryName)
	ts.Require().Equal(entity.DebitPeriod(time.Hour), got.DebitPeriod)

	ts.Require().NoError(ts.repo.DeleteRegularPayment(ctx, p.ID))
	ts.Require().NoError(ts.repo.DeleteRegularPayment(ctx, p.ID), "delete must be idempotent")

	_, err = ts.repo.RegularPayment(ctx, p.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	err = ts.repo.UpdateRegularPayment(ctx, p)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestRegularPayments_Filter() {
	ctx := context.Background()

	a := newRegularPayment("111111111", "11111111")
	b := newRegularPayment("222222222", "11111111")
	c := newRegularPayment("222222222", "33333333")

	for _, p := range []entity.RegularPayment{a, b, c} {
		_, err := ts.repo.CreateRegularPayment(ctx, p)
		ts.Require().NoError(err)
	}

	all, err := ts.repo.RegularPayments(ctx, entity.RegularPaymentFilter{})
	ts.Require().NoError(err)
	ts.Require().Len(all, 3)

	ipn := "222222222"
	byIPN, err := ts.repo.RegularPayments(ctx, entity.RegularPaymentFilter{IPN: &ipn})
	ts.Require().NoError(err)
	ts.Require().Len(byIPN, 2)

	edrpou := "11111111"
	byEDRPOU, err := ts.repo.RegularPayments(ctx, entity.RegularPaymentFilter{EDRPOU: &edrpou})
	ts.Require().NoError(err)
	ts.Require().Len(byEDRPOU, 2)

	both, err := ts.repo.RegularPayments(ctx, entity.RegularPaymentFilter{IPN: &ipn, EDRPOU: &edrpou})
	ts.Require().NoError(err)
	ts.Require().Len(both, 2, "ipn takes precedence")
}

func (ts *RepositoryTestSuite) TestEntries() {
	ctx := context.Background()

	p := newRegularPayment("123456789", "12345678")
	_, err := ts.repo.CreateRegularPayment(ctx, p)
	ts.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Millisecond)

	e := entity.EntriesPayment{
		ID:               uuid.Must(uuid.NewV4()),
		RegularPaymentID: p.ID,
		DateOfPayment:    now,
		Amount:           decimal.RequireFromString("150.25"),
		Status:           entity.EntryStatusActive,
	}

	_, err = ts.repo.CreateEntry(ctx, e)
	ts.Require().NoError(err)

	got, err := ts.repo.Entry(ctx, e.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.EntryStatusActive, got.Status)
	ts.Require().True(now.Equal(got.DateOfPayment))

	e.Status = entity.EntryStatusStornovana
	ts.Require().NoError(ts.repo.UpdateEntry(ctx, e))

	list, err := ts.repo.EntriesByRegularPayment(ctx, p.ID)
	ts.Require().NoError(err)
	ts.Require().Len(list, 1)
	ts.Require().Equal(entity.EntryStatusStornovana, list[0].Status)

	err = ts.repo.DeleteRegularPayment(ctx, p.ID)
	ts.Require().ErrorIs(err, entity.ErrConstraintViolation, "agreement with entries cannot be deleted")

	ts.Require().NoError(ts.repo.DeleteEntry(ctx, e.ID))

	_, err = ts.repo.Entry(ctx, e.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestCreateEntry_UnknownAgreement() {
	_, err := ts.repo.CreateEntry(context.Background(), entity.EntriesPayment{
		ID:               uuid.Must(uuid.NewV4()),
		RegularPaymentID: uuid.Must(uuid.NewV4()),
		DateOfPayment:    time.Now(),
		Amount:           decimal.RequireFromString("1.00"),
		Status:           entity.EntryStatusActive,
	})
	ts.Require().ErrorIs(err, entity.ErrConstraintViolation)
}
