package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/inventory"
	"github.com/fekuna/omnipos-local-store/internal/inventory/dto"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) GetProductInventory(ctx context.Context, productID string) ([]model.StockLevel, error) {
	if productID == "" {
		return nil, apperror.Validation("product id is required")
	}
	return uc.repo.FindAll(ctx, &dto.InventoryFilters{ProductID: productID})
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, threshold int) ([]model.StockLevel, error) {
	if threshold < 0 {
		return nil, apperror.Validation("threshold must not be negative")
	}
	return uc.repo.FindAll(ctx, &dto.InventoryFilters{LowStock: true, Threshold: threshold})
}

func (uc *inventoryUseCase) AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.StockLevel, error) {
	if input.ProductID == "" {
		return nil, apperror.Validation("product id is required")
	}
	if strings.TrimSpace(input.Size) == "" {
		return nil, apperror.Validation("size is required")
	}
	if input.QuantityChange == 0 {
		return nil, apperror.Validation("quantity change must not be zero")
	}

	level, err := uc.repo.AdjustStock(ctx, input)
	if err != nil {
		uc.logger.Warn("inventory adjustment failed",
			zap.String("product_id", input.ProductID),
			zap.String("size", input.Size),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("inventory adjusted",
		zap.String("product_id", level.ProductID),
		zap.String("size", level.Size),
		zap.Int("change", input.QuantityChange),
		zap.Int("after", level.Quantity),
		zap.String("reason", input.Reason),
	)
	return level, nil
}
