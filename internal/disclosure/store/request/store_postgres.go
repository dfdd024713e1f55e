package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"creditlines/internal/disclosure/models"
	id "creditlines/pkg/domain"
	"creditlines/pkg/platform/sentinel"
)

// Schema is the DDL for the disclosure_requests table.
const Schema = `
CREATE TABLE IF NOT EXISTS disclosure_requests (
	static_id         UUID PRIMARY KEY,
	company_static_id TEXT        NOT NULL,
	type              TEXT        NOT NULL,
	currency          TEXT        NOT NULL,
	period            TEXT        NOT NULL,
	period_duration   INT         NOT NULL DEFAULT 0,
	comment           TEXT        NOT NULL DEFAULT '',
	direction         TEXT        NOT NULL,
	status            TEXT        NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL,
	updated_at        TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS disclosure_requests_pending
	ON disclosure_requests (type, currency, period, period_duration)
	WHERE status = 'Pending';
`

// PostgresStore persists disclosure requests in PostgreSQL.
type PostgresStore struct {
	db    *sql.DB
	clock func() time.Time
}

// NewPostgres constructs a PostgreSQL-backed request store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, clock: time.Now}
}

const requestColumns = `static_id, company_static_id, type, currency, period, period_duration, comment, direction, status, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, request *models.DisclosureRequest) (id.StaticID, error) {
	staticID := id.NewStaticID()
	now := s.clock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO disclosure_requests (`+requestColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
	`,
		staticID.String(),
		request.CompanyStaticID.String(),
		request.Type,
		request.Currency,
		request.Period,
		request.PeriodDuration,
		request.Comment,
		request.Direction,
		request.Status,
		now,
	)
	if err != nil {
		return "", fmt.Errorf("create disclosure request: %w", err)
	}
	return staticID, nil
}

func (s *PostgresStore) Update(ctx context.Context, request *models.DisclosureRequest) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE disclosure_requests
		SET comment = $2, status = $3, updated_at = $4
		WHERE static_id = $1
	`, request.StaticID.String(), request.Comment, request.Status, s.clock())
	if err != nil {
		return fmt.Errorf("update disclosure request: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update disclosure request: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindPending(ctx context.Context, positionType models.DepositLoanType, companyStaticID id.StaticID, currency models.Currency, period models.Period, periodDuration int, direction models.RequestDirection) (*models.DisclosureRequest, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+requestColumns+`
		FROM disclosure_requests
		WHERE type = $1 AND company_static_id = $2 AND currency = $3 AND period = $4
			AND period_duration = $5 AND direction = $6 AND status = $7
		ORDER BY created_at
		LIMIT 1
	`, positionType, companyStaticID.String(), currency, period, periodDuration, direction, models.RequestStatusPending)

	request, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find pending request: %w", err)
	}
	return request, nil
}

func (s *PostgresStore) FindAllPending(ctx context.Context, positionType models.DepositLoanType, currency models.Currency, period models.Period, periodDuration int) ([]*models.DisclosureRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM disclosure_requests
		WHERE type = $1 AND currency = $2 AND period = $3 AND period_duration = $4 AND status = $5
		ORDER BY created_at
	`, positionType, currency, period, periodDuration, models.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("find pending requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.DisclosureRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan disclosure request: %w", err)
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*models.DisclosureRequest, error) {
	var request models.DisclosureRequest
	err := row.Scan(
		&request.StaticID,
		&request.CompanyStaticID,
		&request.Type,
		&request.Currency,
		&request.Period,
		&request.PeriodDuration,
		&request.Comment,
		&request.Direction,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}
