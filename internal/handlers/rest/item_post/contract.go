//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=item_post_test
package item_post

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
	CreateItem(ctx context.Context, userID int64, draft entities.InventoryItemDraft) (*entities.InventoryItem, error)
}
