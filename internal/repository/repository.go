package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateRegularPayment(ctx context.Context, p entity.RegularPayment) (entity.RegularPayment, error) {
	const q = `
	INSERT INTO regular_payment (
		id,
		pib,
		ipn,
		iban,
		mfo,
		edrpou,
		beneficiary_name,
		debit_period,
		payment_amount,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.PIB,
		p.IPN,
		p.IBAN,
		p.MFO,
		p.EDRPOU,
		p.BeneficiaryName,
		int64(p.DebitPeriod),
		p.PaymentAmount,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return entity.RegularPayment{}, mapErr(err)
	}

	return p, nil
}

func (r *Repository) RegularPayment(ctx context.Context, id uuid.UUID) (entity.RegularPayment, error) {
	q := selectRegularPayment + " WHERE id = $1"
	return scanRegularPayment(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) UpdateRegularPayment(ctx context.Context, p entity.RegularPayment) error {
	sql, args, err := sq.Update("regular_payment").
		SetMap(map[string]any{
			"pib":              p.PIB,
			"ipn":              p.IPN,
			"iban":             p.IBAN,
			"mfo":              p.MFO,
			"edrpou":           p.EDRPOU,
			"beneficiary_name": p.BeneficiaryName,
			"debit_period":     int64(p.DebitPeriod),
			"payment_amount":   p.PaymentAmount,
			"updated_at":       p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DeleteRegularPayment is a no-op for unknown ids.
func (r *Repository) DeleteRegularPayment(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM regular_payment WHERE id = $1`

	_, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func (r *Repository) RegularPayments(ctx context.Context, f entity.RegularPaymentFilter) ([]entity.RegularPayment, error) {
	stmt := sq.Select(regularPaymentColumns...).
		From("regular_payment").
		OrderBy("created_at", "id").
		PlaceholderFormat(sq.Dollar)

	switch {
	case f.IPN != nil:
		stmt = stmt.Where(sq.Eq{"ipn": *f.IPN})
	case f.EDRPOU != nil:
		stmt = stmt.Where(sq.Eq{"edrpou": *f.EDRPOU})
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]entity.RegularPayment, 0)

	for rows.Next() {
		p, err := scanRegularPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *Repository) CreateEntry(ctx context.Context, e entity.EntriesPayment) (entity.EntriesPayment, error) {
	const q = `
	INSERT INTO entries_payment (
		id,
		regular_payment_id,
		date_of_payment,
		amount,
		status
	)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, q, e.ID, e.RegularPaymentID, e.DateOfPayment, e.Amount, e.Status)
	if err != nil {
		return entity.EntriesPayment{}, mapErr(err)
	}

	return e, nil
}

func (r *Repository) Entry(ctx context.Context, id uuid.UUID) (entity.EntriesPayment, error) {
	q := selectEntry + " WHERE id = $1"
	return scanEntry(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) UpdateEntry(ctx context.Context, e entity.EntriesPayment) error {
	const q = `UPDATE entries_payment SET amount = $1, status = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, e.Amount, e.Status, e.ID)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// DeleteEntry is a no-op for unknown ids.
func (r *Repository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM entries_payment WHERE id = $1`

	_, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func (r *Repository) EntriesByRegularPayment(ctx context.Context, regularPaymentID uuid.UUID) ([]entity.EntriesPayment, error) {
	q := selectEntry + " WHERE regular_payment_id = $1 ORDER BY date_of_payment"

	rows, err := r.db.Query(ctx, q, regularPaymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]entity.EntriesPayment, 0)

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func scanRegularPayment(row pgx.Row) (p entity.RegularPayment, err error) {
	var debitPeriod int64

	err = row.Scan(
		&p.ID,
		&p.PIB,
		&p.IPN,
		&p.IBAN,
		&p.MFO,
		&p.EDRPOU,
		&p.BeneficiaryName,
		&debitPeriod,
		&p.PaymentAmount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RegularPayment{}, entity.ErrNotFound
		}

		return entity.RegularPayment{}, err
	}

	p.DebitPeriod = entity.DebitPeriod(time.Duration(debitPeriod))

	return p, nil
}

func scanEntry(row pgx.Row) (e entity.EntriesPayment, err error) {
	err = row.Scan(
		&e.ID,
		&e.RegularPaymentID,
		&e.DateOfPayment,
		&e.Amount,
		&e.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.EntriesPayment{}, entity.ErrNotFound
		}

		return entity.EntriesPayment{}, err
	}

	return e, nil
}

// Integrity constraint violation codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation:
			return fmt.Errorf("%w: missing required field: %s", entity.ErrConstraintViolation, pgErr.ColumnName)
		case pgForeignKeyViolation, pgUniqueViolation, pgCheckViolation:
			return fmt.Errorf("%w: %s", entity.ErrConstraintViolation, pgErr.Detail)
		}
	}

	return err
}
