//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recommendations_get_test
package recommendations_get

import (
	"context"

	"truckboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetRecommendations(ctx context.Context, userID int64) ([]string, error)
}
