package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection url, use MONGODB_URL env var")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrInvalidTableQuery      = errors.New("invalid collection query")
	ErrTableLookupFailed      = errors.New("collection lookup failed")
)
