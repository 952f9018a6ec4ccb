// Package mongo connects to MongoDB and answers exists/unique rule lookups
// against its collections.
//
// Config is populated from the environment with github.com/caarlos0/env.
// New retries the connection and pings the server; Healthcheck adapts a
// client into a readiness check.
//
// TableChecker implements validator.TableChecker. A rule such as
// Unique("users", "email") counts documents in the users collection whose
// email field equals the value:
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	engine := validator.New(validator.WithTableChecker(
//		mongo.NewTableChecker(mongo.DatabaseCollections(db)),
//	))
package mongo
