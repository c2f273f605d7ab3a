package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyObject(t *testing.T) {
	doc, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, model.NewDocument(), doc)
}

func TestDecodeNull(t *testing.T) {
	doc, err := Decode([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, model.NewDocument(), doc)
}

func TestDecodeRejectsWrongShapes(t *testing.T) {
	for name, input := range map[string]string{
		"not json":          `{"products":`,
		"array root":        `[]`,
		"products object":   `{"products":{}}`,
		"customers string":  `{"customers":"x"}`,
		"sales item scalar": `{"sales":[1]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestDecodeDefaultsProductFields(t *testing.T) {
	doc, err := Decode([]byte(`{"products":[{"id":"p1","name":"Cap","price":"7.25","stockBySize":null}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	p := doc.Products[0]
	assert.Equal(t, "", p.SKU)
	assert.Equal(t, model.StockBySize{}, p.StockBySize)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("7.25")))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []byte(`{
  "products": [
    {
      "id": "p1",
      "name": "Shirt",
      "sku": "SH-1",
      "price": 10.5,
      "stockBySize": {
        "L": 1,
        "M": 2
      }
    }
  ],
  "customers": [],
  "sales": []
}`)
	doc, err := Decode(in)
	require.NoError(t, err)
	out, err := Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, string(in), string(out))
}

func TestCheck(t *testing.T) {
	doc := model.NewDocument()
	assert.NoError(t, Check(doc))

	doc.Products = append(doc.Products, model.Product{ID: "p1", Name: "Shirt", StockBySize: model.StockBySize{"M": -1}})
	assert.ErrorContains(t, Check(doc), "negative stock")

	doc.Products[0].StockBySize["M"] = 1
	doc.Customers = append(doc.Customers, model.Customer{Name: "Ana"})
	assert.ErrorContains(t, Check(doc), "customer \"Ana\" has no id")

	doc.Customers[0].ID = "c1"
	require.NoError(t, Check(doc))

	doc.Products = append(doc.Products, model.Product{ID: "p1", Name: "Cap", StockBySize: model.StockBySize{}})
	assert.ErrorContains(t, Check(doc), `product id "p1" is used more than once`)

	doc.Products[1].ID = "p2"
	doc.Customers = append(doc.Customers, model.Customer{ID: "c1", Name: "Bea"})
	assert.ErrorContains(t, Check(doc), `customer id "c1" is used more than once`)

	doc.Customers[1].ID = "c2"
	doc.Sales = append(doc.Sales, model.Sale{ID: "s1"}, model.Sale{ID: "s1"})
	assert.ErrorContains(t, Check(doc), `sale id "s1" is used more than once`)
}

func TestWriteFileAtomicReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
