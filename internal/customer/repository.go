package customer

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/customer/dto"
	"github.com/fekuna/omnipos-local-store/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	Upsert(ctx context.Context, input *dto.UpsertCustomerInput) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
}
