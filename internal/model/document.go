package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices and totals are written as JSON numbers, matching existing files.
	decimal.MarshalJSONWithoutQuotes = true
}

// Document is the whole persisted state: one JSON object with exactly
// these three arrays.
type Document struct {
	Products  []Product  `json:"products"`
	Customers []Customer `json:"customers"`
	Sales     []Sale     `json:"sales"`
}

// NewDocument returns the empty default document. Collections are non-nil
// so they encode as [] rather than null.
func NewDocument() *Document {
	return &Document{
		Products:  []Product{},
		Customers: []Customer{},
		Sales:     []Sale{},
	}
}

// Clone deep-copies the document so callers never alias live state.
func (d *Document) Clone() *Document {
	out := &Document{
		Products:  make([]Product, len(d.Products)),
		Customers: make([]Customer, len(d.Customers)),
		Sales:     make([]Sale, len(d.Sales)),
	}
	for i, p := range d.Products {
		out.Products[i] = p.Clone()
	}
	copy(out.Customers, d.Customers)
	for i, s := range d.Sales {
		out.Sales[i] = s.Clone()
	}
	return out
}

func (d *Document) ProductIndex(id string) int {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) CustomerIndex(id string) int {
	for i := range d.Customers {
		if d.Customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) SaleIndex(id string) int {
	for i := range d.Sales {
		if d.Sales[i].ID == id {
			return i
		}
	}
	return -1
}

// HasID reports whether any record of any collection already uses id.
func (d *Document) HasID(id string) bool {
	return d.ProductIndex(id) >= 0 || d.CustomerIndex(id) >= 0 || d.SaleIndex(id) >= 0
}

// NewID returns a random identifier not used by any record in d.
func (d *Document) NewID() string {
	for {
		id := uuid.New().String()
		if !d.HasID(id) {
			return id
		}
	}
}
