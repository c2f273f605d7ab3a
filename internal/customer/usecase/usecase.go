package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/customer"
	"github.com/fekuna/omnipos-local-store/internal/customer/dto"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

// UpsertCustomer does not enforce uniqueness of CI or email.
func (uc *customerUseCase) UpsertCustomer(ctx context.Context, input *dto.UpsertCustomerInput) (*model.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.Validation("customer name is required")
	}

	c, err := uc.repo.Upsert(ctx, input)
	if err != nil {
		uc.logger.Error("failed to save customer", zap.String("id", input.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("customer saved", zap.String("id", c.ID))
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.Validation("customer %s not found", id)
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error) {
	if filters == nil {
		filters = &dto.CustomerFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete customer", zap.String("id", id), zap.Error(err))
		return err
	}
	uc.logger.Info("customer deleted", zap.String("id", id))
	return nil
}
