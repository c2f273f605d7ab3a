package report

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/report/dto"
)

// Reader gives read-only access to the live document.
type Reader interface {
	View(ctx context.Context, fn func(doc *model.Document) error) error
}

type UseCase interface {
	Summary(ctx context.Context, recent int) (*dto.Summary, error)
	StockDetail(ctx context.Context) ([]dto.ProductStock, error)
}
