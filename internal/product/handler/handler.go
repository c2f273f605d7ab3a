package handler

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/product"
	"github.com/fekuna/omnipos-local-store/internal/product/dto"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type ListProductsResponse struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

func (h *ProductHandler) UpsertProduct(ctx context.Context, req *dto.UpsertProductInput) envelope.Envelope {
	p, err := h.uc.UpsertProduct(ctx, req)
	if err != nil {
		h.logger.Warn("upsert product failed", zap.Error(err))
		return envelope.Fail(err)
	}
	return envelope.OK(p)
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, id string) envelope.Envelope {
	if err := h.uc.DeleteProduct(ctx, id); err != nil {
		return envelope.Fail(err)
	}
	return envelope.OK(nil)
}

func (h *ProductHandler) GetProduct(ctx context.Context, id string) envelope.Envelope {
	return envelope.From(h.uc.GetProduct(ctx, id))
}

func (h *ProductHandler) FindBySKU(ctx context.Context, sku string) envelope.Envelope {
	return envelope.From(h.uc.FindBySKU(ctx, sku))
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *dto.ProductFilters) envelope.Envelope {
	products, total, err := h.uc.ListProducts(ctx, req)
	if err != nil {
		return envelope.Fail(err)
	}
	return envelope.OK(ListProductsResponse{Products: products, Total: total})
}
