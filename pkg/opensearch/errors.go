package opensearch

import "errors"

var (
	ErrConnectionFailed  = errors.New("opensearch connection failed")
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
	ErrBulkFailed        = errors.New("opensearch bulk request failed")
	ErrInvalidIndex      = errors.New("opensearch index name is empty")
)
