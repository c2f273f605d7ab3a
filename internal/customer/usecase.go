package customer

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/customer/dto"
	"github.com/fekuna/omnipos-local-store/internal/model"
)

type UseCase interface {
	UpsertCustomer(ctx context.Context, input *dto.UpsertCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}
