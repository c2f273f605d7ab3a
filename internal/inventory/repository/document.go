package repository

import (
	"context"
	"math"
	"sort"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/inventory/dto"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/storage"
)

type DocumentRepository struct {
	Engine *storage.Engine
}

func NewDocumentRepository(engine *storage.Engine) *DocumentRepository {
	return &DocumentRepository{Engine: engine}
}

func (r *DocumentRepository) FindAll(ctx context.Context, f *dto.InventoryFilters) ([]model.StockLevel, error) {
	levels := []model.StockLevel{}
	err := r.Engine.View(ctx, func(doc *model.Document) error {
		for _, p := range doc.Products {
			if f.ProductID != "" && p.ID != f.ProductID {
				continue
			}
			sizes := make([]string, 0, len(p.StockBySize))
			for size := range p.StockBySize {
				sizes = append(sizes, size)
			}
			sort.Strings(sizes)
			for _, size := range sizes {
				n := p.StockBySize[size]
				if f.LowStock && n > f.Threshold {
					continue
				}
				levels = append(levels, model.StockLevel{ProductID: p.ID, ProductName: p.Name, Size: size, Quantity: n})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *DocumentRepository) AdjustStock(ctx context.Context, input *dto.AdjustInventoryInput) (*model.StockLevel, error) {
	var level model.StockLevel
	err := r.Engine.Update(ctx, func(doc *model.Document) error {
		idx := doc.ProductIndex(input.ProductID)
		if idx < 0 {
			return apperror.Validation("product %s not found", input.ProductID)
		}
		p := &doc.Products[idx]

		available := p.StockBySize.Available(input.Size)
		if input.QuantityChange > 0 && available > math.MaxInt-input.QuantityChange {
			return apperror.Validation("stock for %s (size %s) would exceed %d", p.Name, input.Size, math.MaxInt)
		}
		after := available + input.QuantityChange
		if after < 0 {
			return apperror.Validation("insufficient inventory for %s (size %s): available %d",
				p.Name, input.Size, available)
		}
		if p.StockBySize == nil {
			p.StockBySize = model.StockBySize{}
		}
		p.StockBySize[input.Size] = after

		level = model.StockLevel{ProductID: p.ID, ProductName: p.Name, Size: input.Size, Quantity: after}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &level, nil
}
