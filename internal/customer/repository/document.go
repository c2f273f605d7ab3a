package repository

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-local-store/internal/customer/dto"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/storage"
)

type DocumentRepository struct {
	Engine *storage.Engine
}

func NewDocumentRepository(engine *storage.Engine) *DocumentRepository {
	return &DocumentRepository{Engine: engine}
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var found *model.Customer
	err := r.Engine.View(ctx, func(doc *model.Document) error {
		if idx := doc.CustomerIndex(id); idx >= 0 {
			c := doc.Customers[idx]
			found = &c
		}
		return nil
	})
	return found, err
}

func (r *DocumentRepository) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, error) {
	customers := []model.Customer{}
	err := r.Engine.View(ctx, func(doc *model.Document) error {
		q := strings.ToLower(strings.TrimSpace(f.SearchQuery))
		for _, c := range doc.Customers {
			if q == "" ||
				strings.Contains(strings.ToLower(c.Name), q) ||
				strings.Contains(strings.ToLower(c.CI), q) {
				customers = append(customers, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *DocumentRepository) Upsert(ctx context.Context, input *dto.UpsertCustomerInput) (*model.Customer, error) {
	var result model.Customer
	err := r.Engine.Update(ctx, func(doc *model.Document) error {
		var c *model.Customer
		if idx := doc.CustomerIndex(input.ID); input.ID != "" && idx >= 0 {
			c = &doc.Customers[idx]
		} else {
			doc.Customers = append(doc.Customers, model.Customer{ID: doc.NewID()})
			c = &doc.Customers[len(doc.Customers)-1]
		}

		c.Name = input.Name
		setIfPresent(&c.Phone, input.Phone)
		setIfPresent(&c.Email, input.Email)
		setIfPresent(&c.CI, input.CI)
		setIfPresent(&c.Address, input.Address)
		result = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Delete leaves sales that reference the customer untouched.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	return r.Engine.Update(ctx, func(doc *model.Document) error {
		kept := doc.Customers[:0]
		for _, c := range doc.Customers {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		doc.Customers = kept
		return nil
	})
}
