package handler

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/report"
)

type ReportHandler struct {
	uc     report.UseCase
	recent int
}

// NewReportHandler uses recent as the dashboard's recent-sales count.
func NewReportHandler(uc report.UseCase, recent int) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		recent: recent,
	}
}

func (h *ReportHandler) Summary(ctx context.Context) envelope.Envelope {
	return h.SummaryWithRecent(ctx, h.recent)
}

func (h *ReportHandler) SummaryWithRecent(ctx context.Context, recent int) envelope.Envelope {
	return envelope.From(h.uc.Summary(ctx, recent))
}

func (h *ReportHandler) StockDetail(ctx context.Context) envelope.Envelope {
	return envelope.From(h.uc.StockDetail(ctx))
}
