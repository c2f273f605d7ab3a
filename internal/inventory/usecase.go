package inventory

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/inventory/dto"
	"github.com/fekuna/omnipos-local-store/internal/model"
)

type UseCase interface {
	GetProductInventory(ctx context.Context, productID string) ([]model.StockLevel, error)
	ListLowStock(ctx context.Context, threshold int) ([]model.StockLevel, error)
	AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.StockLevel, error)
}
