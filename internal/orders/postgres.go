package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"photoprint-backend/internal/catalog"
	"photoprint-backend/internal/wizard"
)

// uniqueViolation is the Postgres error code for a duplicate key.
const uniqueViolation = "23505"

const selectColumns = `
	order_number, size, paper, template, quantity, total,
	customer_name, grade_section, phone, email, instructions, submitted_at`

// PostgresLedger stores receipts in the print_orders table.
type PostgresLedger struct {
	db *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) Record(ctx context.Context, sessionID string, r wizard.Receipt) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO print_orders (
			session_id, order_number, size, paper, template, quantity, total,
			customer_name, grade_section, phone, email, instructions, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		sessionID, r.OrderNumber, string(r.Size), string(r.Paper), string(r.Template), r.Quantity, r.Total,
		r.Customer.Name, r.Customer.Grade, r.Customer.Phone, r.Customer.Email, r.Customer.Instructions,
		r.SubmittedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to record order: %w", err)
	}
	return nil
}

func (l *PostgresLedger) Get(ctx context.Context, sessionID, orderNumber string) (wizard.Receipt, error) {
	if sessionID == "" {
		return wizard.Receipt{}, ErrNotFound
	}
	row := l.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM print_orders WHERE order_number = $1 AND session_id = $2`,
		strings.TrimSpace(orderNumber), sessionID,
	)
	r, err := scanReceipt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return wizard.Receipt{}, ErrNotFound
	}
	if err != nil {
		return wizard.Receipt{}, fmt.Errorf("failed to get order: %w", err)
	}
	return r, nil
}

func (l *PostgresLedger) Recent(ctx context.Context, limit int) ([]wizard.Receipt, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM print_orders ORDER BY submitted_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var out []wizard.Receipt
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReceipt(s scanner) (wizard.Receipt, error) {
	var (
		r                     wizard.Receipt
		size, paper, template string
	)
	err := s.Scan(
		&r.OrderNumber, &size, &paper, &template, &r.Quantity, &r.Total,
		&r.Customer.Name, &r.Customer.Grade, &r.Customer.Phone, &r.Customer.Email, &r.Customer.Instructions,
		&r.SubmittedAt,
	)
	if err != nil {
		return wizard.Receipt{}, err
	}
	r.Size = catalog.Size(size)
	r.Paper = catalog.Paper(paper)
	r.Template = catalog.Template(template)
	r.FormattedTotal = catalog.FormatPeso(r.Total)
	return r, nil
}
