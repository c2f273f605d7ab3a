package product

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/product/dto"
)

type UseCase interface {
	UpsertProduct(ctx context.Context, input *dto.UpsertProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
