//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_put_test
package route_put

import (
	"context"

	"truckboard/internal/entities"
	"truckboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateRoute(ctx context.Context, userID, id int64, draft entities.RouteDraft) (*entities.Route, error)
}
