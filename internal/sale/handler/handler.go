package handler

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/sale"
	"github.com/fekuna/omnipos-local-store/internal/sale/dto"
	"go.uber.org/zap"
)

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SaleHandler) RecordSale(ctx context.Context, req *dto.RecordSaleInput) envelope.Envelope {
	s, err := h.uc.RecordSale(ctx, req)
	if err != nil {
		h.logger.Debug("record sale failed", zap.Error(err))
		return envelope.Fail(err)
	}
	return envelope.OK(s)
}

func (h *SaleHandler) GetSale(ctx context.Context, id string) envelope.Envelope {
	return envelope.From(h.uc.GetSale(ctx, id))
}

func (h *SaleHandler) ListSales(ctx context.Context, req *dto.SaleFilters) envelope.Envelope {
	return envelope.From(h.uc.ListSales(ctx, req))
}
