package auth

import (
	"truckboard/pkg/logger"
	"truckboard/pkg/session"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type sessionValidator interface {
	Validate(token string) (*session.Claims, error)
}
