package opensearch

import (
	"context"
	"errors"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
)

// New creates a client and verifies the cluster answers before returning it.
func New(ctx context.Context, cfg Config) (*opensearch.Client, error) {
	osCfg := opensearch.Config{
		Addresses:           cfg.Addresses,
		Username:            cfg.Username,
		Password:            cfg.Password,
		MaxRetries:          cfg.MaxRetries,
		DisableRetry:        cfg.DisableRetry,
		CompressRequestBody: cfg.CompressBody,
	}
	if cfg.RetryBackoff > 0 {
		base := cfg.RetryBackoff
		osCfg.RetryBackoff = func(attempt int) time.Duration {
			return time.Duration(attempt) * base
		}
	}

	client, err := opensearch.NewClient(osCfg)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	if err := Healthcheck(client)(ctx); err != nil {
		return nil, err
	}
	return client, nil
}
