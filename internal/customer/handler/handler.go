package handler

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/customer"
	"github.com/fekuna/omnipos-local-store/internal/customer/dto"
	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) UpsertCustomer(ctx context.Context, req *dto.UpsertCustomerInput) envelope.Envelope {
	c, err := h.uc.UpsertCustomer(ctx, req)
	if err != nil {
		h.logger.Warn("upsert customer failed", zap.Error(err))
		return envelope.Fail(err)
	}
	return envelope.OK(c)
}

func (h *CustomerHandler) DeleteCustomer(ctx context.Context, id string) envelope.Envelope {
	if err := h.uc.DeleteCustomer(ctx, id); err != nil {
		return envelope.Fail(err)
	}
	return envelope.OK(nil)
}

func (h *CustomerHandler) GetCustomer(ctx context.Context, id string) envelope.Envelope {
	return envelope.From(h.uc.GetCustomer(ctx, id))
}

func (h *CustomerHandler) ListCustomers(ctx context.Context, req *dto.CustomerFilters) envelope.Envelope {
	return envelope.From(h.uc.ListCustomers(ctx, req))
}
