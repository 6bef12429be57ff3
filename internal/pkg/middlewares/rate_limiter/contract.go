package rate_limiter

import "truckboard/pkg/logger"

// Limiter is satisfied by the token bucket from pkg/token_bucket that
// main wires in front of the router.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
