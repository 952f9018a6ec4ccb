package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
	ErrPushFailed                   = errors.New("redis log push failed")
	ErrInvalidKey                   = errors.New("redis log key is empty")
)
