package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	StockBySize StockBySize     `json:"stockBySize"`
}

// StockBySize maps a size label to its unit count. A missing label means zero.
type StockBySize map[string]int

func (s StockBySize) Available(size string) int {
	return s[size]
}

func (s StockBySize) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// InStock returns the labels with a positive count, sorted.
func (s StockBySize) InStock() []string {
	sizes := make([]string, 0, len(s))
	for size, n := range s {
		if n > 0 {
			sizes = append(sizes, size)
		}
	}
	sort.Strings(sizes)
	return sizes
}

func (s StockBySize) Clone() StockBySize {
	if s == nil {
		return StockBySize{}
	}
	out := make(StockBySize, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (p Product) Clone() Product {
	p.StockBySize = p.StockBySize.Clone()
	return p
}
