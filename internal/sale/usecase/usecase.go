package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/sale"
	"github.com/fekuna/omnipos-local-store/internal/sale/dto"
	"go.uber.org/zap"
)

type saleUseCase struct {
	repo   sale.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

type Option func(*saleUseCase)

// WithClock overrides the time source used to stamp new sales.
func WithClock(now func() time.Time) Option {
	return func(uc *saleUseCase) {
		uc.now = now
	}
}

func NewSaleUseCase(repo sale.Repository, log logger.ZapLogger, opts ...Option) sale.UseCase {
	uc := &saleUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *saleUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Sale, error) {
	items, err := buildItems(input.Items)
	if err != nil {
		uc.logger.Debug("sale rejected", zap.Error(err))
		return nil, err
	}

	draft := &model.Sale{
		Items:            items,
		CustomerID:       input.CustomerID,
		PaymentMethod:    input.PaymentMethod,
		PaymentReference: input.PaymentReference,
		Notes:            input.Notes,
		Date:             uc.now().UTC(),
		Total:            model.SaleTotal(items),
	}

	s, err := uc.repo.Record(ctx, draft)
	if err != nil {
		if apperror.IsValidation(err) {
			uc.logger.Warn("sale rejected", zap.Error(err))
		} else {
			uc.logger.Error("failed to record sale", zap.Error(err))
		}
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.String("sale_id", s.ID),
		zap.String("total", s.Total.String()),
		zap.Int("items", len(s.Items)),
	)
	return s, nil
}

func buildItems(in []dto.SaleItemInput) ([]model.SaleItem, error) {
	if len(in) == 0 {
		return nil, apperror.Validation("a sale needs at least one item")
	}
	items := make([]model.SaleItem, 0, len(in))
	for i, item := range in {
		line := i + 1
		if strings.TrimSpace(item.ProductID) == "" {
			return nil, apperror.Validation("item %d: product id is required", line)
		}
		if strings.TrimSpace(item.Size) == "" {
			return nil, apperror.Validation("item %d: size is required", line)
		}
		if item.Quantity <= 0 {
			return nil, apperror.Validation("item %d: quantity must be positive", line)
		}
		if item.Price == nil {
			return nil, apperror.Validation("item %d: price is required", line)
		}
		if item.Price.IsNegative() {
			return nil, apperror.Validation("item %d: price must not be negative", line)
		}
		items = append(items, model.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     *item.Price,
		})
	}
	return items, nil
}

func (uc *saleUseCase) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.Validation("sale %s not found", id)
	}
	return s, nil
}

func (uc *saleUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, error) {
	if filters == nil {
		filters = &dto.SaleFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}
