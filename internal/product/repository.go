package product

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/product/dto"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)

	// SKU is not unique; the first match in catalog order wins.
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)

	// Upsert merges input into the product with input.ID, or appends a new
	// product with a fresh id when there is none. Input must be validated.
	Upsert(ctx context.Context, input *dto.UpsertProductInput) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}
