package disclosed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"creditlines/internal/disclosure/models"
	id "creditlines/pkg/domain"
	"creditlines/pkg/platform/sentinel"
)

// Schema is the DDL for the disclosed_positions table. The partial unique
// index turns the findOne/create race on the natural key into a surfaced
// conflict instead of a silent duplicate.
const Schema = `
CREATE TABLE IF NOT EXISTS disclosed_positions (
	static_id        UUID PRIMARY KEY,
	owner_static_id  TEXT        NOT NULL,
	type             TEXT        NOT NULL,
	currency         TEXT        NOT NULL,
	period           TEXT        NOT NULL,
	period_duration  INT         NOT NULL DEFAULT 0,
	appetite         BOOLEAN,
	pricing          DOUBLE PRECISION,
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL,
	deleted_at       TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS disclosed_positions_natural_key
	ON disclosed_positions (owner_static_id, type, currency, period, period_duration)
	WHERE deleted_at IS NULL;
`

// PostgresStore persists disclosed positions in PostgreSQL.
type PostgresStore struct {
	db    *sql.DB
	clock func() time.Time
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*PostgresStore)

// WithPostgresClock sets the clock function for testability.
func WithPostgresClock(clock func() time.Time) PostgresOption {
	return func(s *PostgresStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewPostgres constructs a PostgreSQL-backed disclosed-position store.
func NewPostgres(db *sql.DB, opts ...PostgresOption) *PostgresStore {
	s := &PostgresStore{db: db, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const positionColumns = `static_id, owner_static_id, type, currency, period, period_duration, appetite, pricing, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, position *models.DisclosedPosition) (id.StaticID, error) {
	staticID := id.NewStaticID()
	now := s.clock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO disclosed_positions (`+positionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`,
		staticID.String(),
		position.OwnerStaticID.String(),
		position.Type,
		position.Currency,
		position.Period,
		position.PeriodDuration,
		position.Appetite,
		position.Pricing,
		now,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", sentinel.ErrConflict
		}
		return "", fmt.Errorf("create disclosed position: %w", err)
	}
	return staticID, nil
}

func (s *PostgresStore) Update(ctx context.Context, position *models.DisclosedPosition) (*models.DisclosedPosition, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE disclosed_positions
		SET owner_static_id = $2,
			currency = $3,
			period = $4,
			period_duration = $5,
			appetite = $6,
			pricing = $7,
			updated_at = $8
		WHERE static_id = $1 AND deleted_at IS NULL
		RETURNING `+positionColumns,
		position.StaticID.String(),
		position.OwnerStaticID.String(),
		position.Currency,
		position.Period,
		position.PeriodDuration,
		position.Appetite,
		position.Pricing,
		s.clock(),
	)
	updated, err := scanPosition(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update disclosed position: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) Get(ctx context.Context, positionType models.DepositLoanType, staticID id.StaticID) (*models.DisclosedPosition, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+positionColumns+`
		FROM disclosed_positions
		WHERE static_id = $1 AND type = $2 AND deleted_at IS NULL
	`, staticID.String(), positionType)
	position, err := scanPosition(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get disclosed position: %w", err)
	}
	return position, nil
}

func (s *PostgresStore) FindOne(ctx context.Context, positionType models.DepositLoanType, key models.NaturalKey) (*models.DisclosedPosition, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+positionColumns+`
		FROM disclosed_positions
		WHERE owner_static_id = $1 AND type = $2 AND currency = $3
			AND period = $4 AND period_duration = $5 AND deleted_at IS NULL
	`, key.OwnerStaticID.String(), positionType, key.Currency, key.Period, key.PeriodDuration)
	position, err := scanPosition(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find disclosed position: %w", err)
	}
	return position, nil
}

func (s *PostgresStore) Find(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter, opts models.FindOptions) ([]*models.DisclosedPosition, error) {
	query := `
		SELECT ` + positionColumns + `
		FROM disclosed_positions
		WHERE type = $1 AND deleted_at IS NULL` + filterClauses(filter) + `
		ORDER BY updated_at DESC`
	args := append([]any{positionType}, filterArgs(filter)...)

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}
	if opts.Skip > 0 {
		query += fmt.Sprintf(" OFFSET %d", opts.Skip)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find disclosed positions: %w", err)
	}
	defer rows.Close()

	var positions []*models.DisclosedPosition
	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan disclosed position: %w", err)
		}
		positions = append(positions, position)
	}
	return positions, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM disclosed_positions
		WHERE type = $1 AND deleted_at IS NULL` + filterClauses(filter)
	args := append([]any{positionType}, filterArgs(filter)...)

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count disclosed positions: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) Delete(ctx context.Context, positionType models.DepositLoanType, staticID id.StaticID) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE disclosed_positions
		SET deleted_at = $3, updated_at = $3
		WHERE static_id = $1 AND type = $2 AND deleted_at IS NULL
	`, staticID.String(), positionType, s.clock())
	if err != nil {
		return fmt.Errorf("delete disclosed position: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete disclosed position: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DisclosedSummary(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter) ([]*models.DisclosedSummary, error) {
	query := `
		SELECT currency, period, period_duration,
			COUNT(*) FILTER (WHERE appetite IS TRUE) AS appetite_count,
			MIN(pricing) AS lowest_pricing,
			MAX(updated_at) AS last_updated
		FROM disclosed_positions
		WHERE type = $1 AND deleted_at IS NULL` + filterClauses(filter) + `
		GROUP BY currency, period, period_duration
		ORDER BY currency, period, period_duration`
	args := append([]any{positionType}, filterArgs(filter)...)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("disclosed summary: %w", err)
	}
	defer rows.Close()

	var summaries []*models.DisclosedSummary
	for rows.Next() {
		var summary models.DisclosedSummary
		var pricing sql.NullFloat64
		if err := rows.Scan(
			&summary.Currency,
			&summary.Period,
			&summary.PeriodDuration,
			&summary.AppetiteCount,
			&pricing,
			&summary.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		if pricing.Valid {
			summary.LowestPricing = &pricing.Float64
		}
		summaries = append(summaries, &summary)
	}
	return summaries, rows.Err()
}

// filterClauses and filterArgs must stay in lockstep; the filter appends
// positional parameters after $1 (type).
func filterClauses(filter models.PositionFilter) string {
	clause := ""
	i := 2
	if !filter.OwnerStaticID.IsEmpty() {
		clause += fmt.Sprintf(" AND owner_static_id = $%d", i)
		i++
	}
	if filter.Currency != "" {
		clause += fmt.Sprintf(" AND currency = $%d", i)
		i++
	}
	if filter.Period != "" {
		clause += fmt.Sprintf(" AND period = $%d", i)
	}
	return clause
}

func filterArgs(filter models.PositionFilter) []any {
	var args []any
	if !filter.OwnerStaticID.IsEmpty() {
		args = append(args, filter.OwnerStaticID.String())
	}
	if filter.Currency != "" {
		args = append(args, filter.Currency)
	}
	if filter.Period != "" {
		args = append(args, filter.Period)
	}
	return args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosition(row rowScanner) (*models.DisclosedPosition, error) {
	var position models.DisclosedPosition
	var appetite sql.NullBool
	var pricing sql.NullFloat64
	err := row.Scan(
		&position.StaticID,
		&position.OwnerStaticID,
		&position.Type,
		&position.Currency,
		&position.Period,
		&position.PeriodDuration,
		&appetite,
		&pricing,
		&position.CreatedAt,
		&position.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if appetite.Valid {
		position.Appetite = &appetite.Bool
	}
	if pricing.Valid {
		position.Pricing = &pricing.Float64
	}
	return &position, nil
}
