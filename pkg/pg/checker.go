package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/formrequest/pkg/validator"
)

// Querier is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx used by
// TableChecker.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TableChecker answers exists/unique lookups with a SELECT EXISTS query.
type TableChecker struct {
	db      Querier
	timeout time.Duration
}

var _ validator.TableChecker = (*TableChecker)(nil)

// CheckerOption configures a TableChecker.
type CheckerOption func(*TableChecker)

// WithQueryTimeout bounds each lookup. Zero disables the bound.
func WithQueryTimeout(d time.Duration) CheckerOption {
	return func(c *TableChecker) { c.timeout = d }
}

// NewTableChecker returns a checker querying db.
func NewTableChecker(db Querier, opts ...CheckerOption) *TableChecker {
	c := &TableChecker{db: db}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists reports whether a row with Column = Value exists in Table. When
// WhereNull is set, rows where that column is not NULL are ignored.
func (c *TableChecker) Exists(ctx context.Context, q validator.TableQuery) (bool, error) {
	query, err := existsQuery(q)
	if err != nil {
		return false, err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var exists bool
	if err := c.db.QueryRow(ctx, query, q.Value).Scan(&exists); err != nil {
		return false, errors.Join(ErrTableLookupFailed, err)
	}
	return exists, nil
}

func existsQuery(q validator.TableQuery) (string, error) {
	if q.Table == "" || q.Column == "" {
		return "", fmt.Errorf("%w: table and column are required", ErrInvalidTableQuery)
	}
	table, err := identifier(q.Table)
	if err != nil {
		return "", err
	}
	column, err := identifier(q.Column)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("SELECT EXISTS (SELECT 1 FROM ")
	b.WriteString(table)
	b.WriteString(" WHERE ")
	b.WriteString(column)
	b.WriteString(" = $1")
	if q.WhereNull != "" {
		null, err := identifier(q.WhereNull)
		if err != nil {
			return "", err
		}
		b.WriteString(" AND ")
		b.WriteString(null)
		b.WriteString(" IS NULL")
	}
	b.WriteString(")")
	return b.String(), nil
}

func identifier(name string) (string, error) {
	parts := strings.Split(name, ".")
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return "", fmt.Errorf("%w: malformed identifier %q", ErrInvalidTableQuery, name)
		}
	}
	return pgx.Identifier(parts).Sanitize(), nil
}
