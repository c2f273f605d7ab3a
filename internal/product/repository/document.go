package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/product/dto"
	"github.com/fekuna/omnipos-local-store/internal/storage"
)

type DocumentRepository struct {
	Engine *storage.Engine
}

func NewDocumentRepository(engine *storage.Engine) *DocumentRepository {
	return &DocumentRepository{Engine: engine}
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var found *model.Product
	err := r.Engine.View(ctx, func(doc *model.Document) error {
		if idx := doc.ProductIndex(id); idx >= 0 {
			p := doc.Products[idx].Clone()
			found = &p
		}
		return nil
	})
	return found, err
}

func (r *DocumentRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var found *model.Product
	err := r.Engine.View(ctx, func(doc *model.Document) error {
		for _, p := range doc.Products {
			if p.SKU != "" && strings.EqualFold(p.SKU, sku) {
				cp := p.Clone()
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *DocumentRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	products := []model.Product{}
	err := r.Engine.View(ctx, func(doc *model.Document) error {
		q := strings.ToLower(f.SearchQuery)
		for _, p := range doc.Products {
			if q != "" &&
				!strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.SKU), q) {
				continue
			}
			products = append(products, p.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	desc := strings.ToLower(f.SortOrder) == "desc"
	switch f.SortBy {
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			a, b := strings.ToLower(products[i].Name), strings.ToLower(products[j].Name)
			if desc {
				return a > b
			}
			return a < b
		})
	case "price":
		sort.SliceStable(products, func(i, j int) bool {
			if desc {
				return products[i].Price.GreaterThan(products[j].Price)
			}
			return products[i].Price.LessThan(products[j].Price)
		})
	}

	count := len(products)
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start > count {
			start = count
		}
		end := start + f.PageSize
		if end > count {
			end = count
		}
		products = products[start:end]
	}

	return products, count, nil
}

func (r *DocumentRepository) Upsert(ctx context.Context, input *dto.UpsertProductInput) (*model.Product, error) {
	var result model.Product
	err := r.Engine.Update(ctx, func(doc *model.Document) error {
		if idx := doc.ProductIndex(input.ID); input.ID != "" && idx >= 0 {
			p := &doc.Products[idx]
			p.Name = input.Name
			if input.Price != nil {
				p.Price = *input.Price
			}
			if input.SKU != nil {
				p.SKU = *input.SKU
			}
			if input.StockBySize != nil {
				p.StockBySize = input.StockBySize.Clone()
			}
			result = p.Clone()
			return nil
		}

		p := model.Product{
			ID:          doc.NewID(),
			Name:        input.Name,
			StockBySize: input.StockBySize.Clone(),
		}
		if input.Price != nil {
			p.Price = *input.Price
		}
		if input.SKU != nil {
			p.SKU = *input.SKU
		}
		doc.Products = append(doc.Products, p)
		result = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	return r.Engine.Update(ctx, func(doc *model.Document) error {
		kept := doc.Products[:0]
		for _, p := range doc.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		doc.Products = kept
		return nil
	})
}
