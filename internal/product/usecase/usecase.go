package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/product"
	"github.com/fekuna/omnipos-local-store/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) UpsertProduct(ctx context.Context, input *dto.UpsertProductInput) (*model.Product, error) {
	if err := validateUpsert(input); err != nil {
		uc.logger.Debug("product rejected", zap.String("id", input.ID), zap.Error(err))
		return nil, err
	}

	p, err := uc.repo.Upsert(ctx, input)
	if err != nil {
		uc.logger.Error("failed to save product", zap.String("id", input.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("product saved", zap.String("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// validateUpsert distinguishes an absent price from a zero one: free items
// are allowed, missing prices are not.
func validateUpsert(input *dto.UpsertProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperror.Validation("product name is required")
	}
	if input.Price == nil {
		return apperror.Validation("product price is required")
	}
	if input.Price.IsNegative() {
		return apperror.Validation("product price must not be negative")
	}
	for size, n := range input.StockBySize {
		if strings.TrimSpace(size) == "" {
			return apperror.Validation("stock size label must not be empty")
		}
		if n < 0 {
			return apperror.Validation("stock for size %s must not be negative", size)
		}
	}
	return nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.Validation("product %s not found", id)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	if filters == nil {
		filters = &dto.ProductFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, apperror.Validation("sku is required")
	}
	p, err := uc.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.Validation("no product with sku %s", sku)
	}
	return p, nil
}

// DeleteProduct is a no-op for unknown ids. Past sales keep their own
// item snapshots.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete product", zap.String("id", id), zap.Error(err))
		return err
	}
	uc.logger.Info("product deleted", zap.String("id", id))
	return nil
}
