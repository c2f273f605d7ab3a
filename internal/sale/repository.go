package sale

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/sale/dto"
)

type Repository interface {
	// Record checks every line against current stock, and only when all
	// pass decrements stock and appends the sale, in one transaction.
	Record(ctx context.Context, sale *model.Sale) (*model.Sale, error)

	FindByID(ctx context.Context, id string) (*model.Sale, error)
	FindAll(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error)
}
