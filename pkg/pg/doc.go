// Package pg backs the exists and unique validation rules with PostgreSQL
// through pgx/v5.
//
// Connect opens a *pgxpool.Pool from Config, which is read from PG_*
// environment variables. TableChecker implements validator.TableChecker on
// top of any Querier, the pool included:
//
//	pool, err := pg.Connect(ctx, cfg, log)
//	if err != nil {
//		return err
//	}
//	engine := validator.New(validator.WithTableChecker(pg.NewTableChecker(pool)))
//
// Table and column names come from rule parameters and are quoted with
// pgx.Identifier, so "billing.invoices" addresses the invoices table in the
// billing schema. Values are always passed as query arguments.
package pg
