package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/formrequest/pkg/validator"
)

// Counter is the subset of *mongo.Collection used by TableChecker.
type Counter interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// Collections resolves a collection by name.
type Collections func(name string) Counter

// DatabaseCollections resolves collections from db.
func DatabaseCollections(db *mongo.Database) Collections {
	return func(name string) Counter { return db.Collection(name) }
}

// TableChecker answers exists/unique lookups by counting at most one
// matching document. The table names the collection and the column names
// the field. Values are matched as given, so a string never matches a
// number.
type TableChecker struct {
	collections Collections
	timeout     time.Duration
}

var _ validator.TableChecker = (*TableChecker)(nil)

// CheckerOption configures a TableChecker.
type CheckerOption func(*TableChecker)

// WithQueryTimeout bounds each lookup. Zero disables the bound.
func WithQueryTimeout(d time.Duration) CheckerOption {
	return func(c *TableChecker) { c.timeout = d }
}

// NewTableChecker returns a checker looking up collections.
func NewTableChecker(collections Collections, opts ...CheckerOption) *TableChecker {
	c := &TableChecker{collections: collections}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists reports whether a document with Column == Value exists in Table.
// When WhereNull is set, documents where that field holds a value are
// ignored; a missing field counts as null.
func (c *TableChecker) Exists(ctx context.Context, q validator.TableQuery) (bool, error) {
	filter, err := Filter(q)
	if err != nil {
		return false, err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	n, err := c.collections(q.Table).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Join(ErrTableLookupFailed, err)
	}
	return n > 0, nil
}

// Filter builds the document filter for q.
func Filter(q validator.TableQuery) (bson.D, error) {
	if strings.TrimSpace(q.Table) == "" || strings.TrimSpace(q.Column) == "" {
		return nil, fmt.Errorf("%w: collection and field are required", ErrInvalidTableQuery)
	}
	if strings.HasPrefix(q.Column, "$") || strings.HasPrefix(q.WhereNull, "$") {
		return nil, fmt.Errorf("%w: field names must not start with $", ErrInvalidTableQuery)
	}

	filter := bson.D{{Key: q.Column, Value: q.Value}}
	if q.WhereNull != "" {
		filter = append(filter, bson.E{Key: q.WhereNull, Value: nil})
	}
	return filter, nil
}
