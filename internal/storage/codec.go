package storage

import (
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-local-store/internal/model"
)

// Collection keys of the persisted document.
const (
	KeyProducts  = "products"
	KeyCustomers = "customers"
	KeySales     = "sales"
)

var collectionKeys = []string{KeyProducts, KeyCustomers, KeySales}

// schemaStep rewrites the raw top-level object before it is decoded.
type schemaStep struct {
	name  string
	apply func(raw map[string]json.RawMessage)
}

// schemaSteps run in order, once per decode. Each is idempotent.
var schemaSteps = []schemaStep{
	{name: "default-collections", apply: defaultCollections},
}

func defaultCollections(raw map[string]json.RawMessage) {
	for _, key := range collectionKeys {
		v, ok := raw[key]
		if !ok || string(v) == "null" {
			raw[key] = json.RawMessage("[]")
		}
	}
}

// Encode renders the document the way it is stored: two-space indented JSON.
func Encode(doc *model.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses a stored document, filling absent collections and record
// fields from the defaults. It never fails on a partial document, only on
// one that is not JSON or whose collections have the wrong shape.
func Decode(data []byte) (*model.Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}
	for _, step := range schemaSteps {
		step.apply(raw)
	}

	doc := model.NewDocument()
	if err := json.Unmarshal(raw[KeyProducts], &doc.Products); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyProducts, err)
	}
	if err := json.Unmarshal(raw[KeyCustomers], &doc.Customers); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyCustomers, err)
	}
	if err := json.Unmarshal(raw[KeySales], &doc.Sales); err != nil {
		return nil, fmt.Errorf("%s: %w", KeySales, err)
	}
	normalize(doc)
	return doc, nil
}

func normalize(doc *model.Document) {
	if doc.Products == nil {
		doc.Products = []model.Product{}
	}
	if doc.Customers == nil {
		doc.Customers = []model.Customer{}
	}
	if doc.Sales == nil {
		doc.Sales = []model.Sale{}
	}
	for i := range doc.Products {
		if doc.Products[i].StockBySize == nil {
			doc.Products[i].StockBySize = model.StockBySize{}
		}
	}
	for i := range doc.Sales {
		if doc.Sales[i].Items == nil {
			doc.Sales[i].Items = []model.SaleItem{}
		}
	}
}

// Check reports the first record that breaks a document invariant: every
// record has an id unique within its collection, and no stock is negative.
func Check(doc *model.Document) error {
	seen := map[string]bool{}
	for _, p := range doc.Products {
		if p.ID == "" {
			return fmt.Errorf("product %q has no id", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("product id %q is used more than once", p.ID)
		}
		seen[p.ID] = true
		for size, n := range p.StockBySize {
			if n < 0 {
				return fmt.Errorf("product %q has negative stock %d for size %q", p.Name, n, size)
			}
		}
	}

	seen = map[string]bool{}
	for _, c := range doc.Customers {
		if c.ID == "" {
			return fmt.Errorf("customer %q has no id", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("customer id %q is used more than once", c.ID)
		}
		seen[c.ID] = true
	}

	seen = map[string]bool{}
	for _, s := range doc.Sales {
		if s.ID == "" {
			return fmt.Errorf("sale dated %s has no id", s.Date)
		}
		if seen[s.ID] {
			return fmt.Errorf("sale id %q is used more than once", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
