//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=item_put_test
package item_put

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
	UpdateItem(ctx context.Context, userID, id int64, draft entities.InventoryItemDraft) (*entities.InventoryItem, error)
}
