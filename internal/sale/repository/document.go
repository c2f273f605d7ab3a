package repository

import (
	"context"
	"math"
	"sort"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/sale/dto"
	"github.com/fekuna/omnipos-local-store/internal/storage"
)

type DocumentRepository struct {
	Engine *storage.Engine
}

func NewDocumentRepository(engine *storage.Engine) *DocumentRepository {
	return &DocumentRepository{Engine: engine}
}

type stockKey struct {
	product int
	size    string
}

type reservation struct {
	key      stockKey
	quantity int
}

func (r *DocumentRepository) Record(ctx context.Context, s *model.Sale) (*model.Sale, error) {
	var stored model.Sale
	err := r.Engine.Update(ctx, func(doc *model.Document) error {
		reservations, err := reserveStock(doc, s.Items)
		if err != nil {
			return err
		}

		for _, res := range reservations {
			doc.Products[res.key.product].StockBySize[res.key.size] -= res.quantity
		}

		stored = s.Clone()
		for i := range stored.Items {
			if stored.Items[i].Name == "" {
				stored.Items[i].Name = doc.Products[doc.ProductIndex(stored.Items[i].ProductID)].Name
			}
		}
		stored.ID = doc.NewID()
		doc.Sales = append(doc.Sales, stored.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// reserveStock is the read-only validation pass. Lines for the same product
// and size are summed so that duplicates cannot overdraw a counter.
func reserveStock(doc *model.Document, items []model.SaleItem) ([]reservation, error) {
	var out []reservation
	index := map[stockKey]int{}

	for _, item := range items {
		idx := doc.ProductIndex(item.ProductID)
		if idx < 0 {
			if item.Name != "" {
				return nil, apperror.Validation("product %s (%s) not found", item.Name, item.ProductID)
			}
			return nil, apperror.Validation("product %s not found", item.ProductID)
		}

		key := stockKey{product: idx, size: item.Size}
		pos, seen := index[key]
		if !seen {
			pos = len(out)
			index[key] = pos
			out = append(out, reservation{key: key})
		}

		// Compare against the remaining headroom so huge quantities cannot
		// overflow the running sum.
		p := doc.Products[idx]
		available := p.StockBySize.Available(item.Size)
		if reserved := out[pos].quantity; item.Quantity > available-reserved {
			if item.Quantity > math.MaxInt-reserved {
				return nil, apperror.Validation("insufficient stock for %s (size %s): available %d, requested more than %d",
					p.Name, item.Size, available, math.MaxInt)
			}
			return nil, apperror.Validation("insufficient stock for %s (size %s): available %d, requested %d",
				p.Name, item.Size, available, reserved+item.Quantity)
		}
		out[pos].quantity += item.Quantity
	}
	return out, nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	var found *model.Sale
	err := r.Engine.View(ctx, func(doc *model.Document) error {
		if idx := doc.SaleIndex(id); idx >= 0 {
			s := doc.Sales[idx].Clone()
			found = &s
		}
		return nil
	})
	return found, err
}

func (r *DocumentRepository) FindAll(ctx context.Context, f *dto.SaleFilters) ([]model.Sale, error) {
	sales := []model.Sale{}
	err := r.Engine.View(ctx, func(doc *model.Document) error {
		// Walk backwards so ties on date keep newest-recorded first.
		for i := len(doc.Sales) - 1; i >= 0; i-- {
			s := doc.Sales[i]
			if f.CustomerID != "" && s.CustomerID != f.CustomerID {
				continue
			}
			sales = append(sales, s.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	if f.Limit > 0 && len(sales) > f.Limit {
		sales = sales[:f.Limit]
	}
	return sales, nil
}
