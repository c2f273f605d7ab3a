package handler

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/inventory"
	"github.com/fekuna/omnipos-local-store/internal/inventory/dto"
	"github.com/fekuna/omnipos-local-store/internal/logger"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) GetProductInventory(ctx context.Context, productID string) envelope.Envelope {
	return envelope.From(h.uc.GetProductInventory(ctx, productID))
}

func (h *InventoryHandler) ListLowStock(ctx context.Context, threshold int) envelope.Envelope {
	return envelope.From(h.uc.ListLowStock(ctx, threshold))
}

func (h *InventoryHandler) AdjustInventory(ctx context.Context, req *dto.AdjustInventoryInput) envelope.Envelope {
	return envelope.From(h.uc.AdjustInventory(ctx, req))
}
