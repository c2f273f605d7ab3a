package inventory

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/inventory/dto"
	"github.com/fekuna/omnipos-local-store/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context, filters *dto.InventoryFilters) ([]model.StockLevel, error)

	// AdjustStock applies a signed change to one size counter and refuses
	// any change that would leave it negative.
	AdjustStock(ctx context.Context, input *dto.AdjustInventoryInput) (*model.StockLevel, error)
}
