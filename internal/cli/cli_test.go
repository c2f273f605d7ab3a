package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-local-store/config"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Kind    string          `json:"kind"`
}

func testConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.DataDir = dir
	cfg.Store.FileName = "sales-db.json"
	cfg.Store.FileMode = 0o644
	cfg.Report.RecentSales = 6
	return cfg
}

func run(t *testing.T, dir string, args ...string) (response, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(testConfig(dir), logger.NewNop())
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	var resp response
	if buf.Len() > 0 {
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp), buf.String())
	}
	return resp, err
}

func TestProductAndSaleFlow(t *testing.T) {
	dir := t.TempDir()

	resp, err := run(t, dir, "product", "upsert", "--json", `{"name":"Shirt","price":10,"stockBySize":{"M":5}}`)
	require.NoError(t, err)
	require.True(t, resp.Success)
	var product struct {
		ID          string         `json:"id"`
		StockBySize map[string]int `json:"stockBySize"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &product))
	require.NotEmpty(t, product.ID)
	assert.Equal(t, 5, product.StockBySize["M"])

	sale := `{"items":[{"productId":"` + product.ID + `","size":"M","quantity":3,"price":10}],"paymentMethod":"cash"}`
	resp, err = run(t, dir, "sale", "record", "--json", sale)
	require.NoError(t, err)
	require.True(t, resp.Success)
	var recorded struct {
		Total json.Number `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &recorded))
	assert.Equal(t, "30", recorded.Total.String())

	over := `{"items":[{"productId":"` + product.ID + `","size":"M","quantity":10,"price":10}],"paymentMethod":"cash"}`
	resp, err = run(t, dir, "sale", "record", "--json", over)
	require.ErrorIs(t, err, ErrOperationFailed)
	assert.False(t, resp.Success)
	assert.Equal(t, "validation", resp.Kind)
	assert.Contains(t, resp.Error, "Shirt")

	resp, err = run(t, dir, "inventory", "get", product.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":"`+product.ID+`","productName":"Shirt","size":"M","quantity":2}]`, string(resp.Data))
}

func TestDataResetAndLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "customer", "upsert", "--json", `{"name":"Ana"}`)
	require.NoError(t, err)

	resp, err := run(t, dir, "data", "reset")
	require.NoError(t, err)
	assert.True(t, resp.Success)

	resp, err = run(t, dir, "data", "load")
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[],"customers":[],"sales":[]}`, string(resp.Data))
}

func TestDataBackupAndImport(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(t.TempDir(), "copy.json")

	_, err := run(t, dir, "customer", "upsert", "--json", `{"name":"Ana"}`)
	require.NoError(t, err)

	resp, err := run(t, dir, "data", "backup", "--out", dest)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"`+dest+`"}`, string(resp.Data))

	resp, err = run(t, dir, "data", "backup", "--out", "")
	require.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "cancelled", resp.Kind)

	_, err = run(t, dir, "data", "reset")
	require.NoError(t, err)
	resp, err = run(t, dir, "data", "import", dest)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	resp, err = run(t, dir, "customer", "list")
	require.NoError(t, err)
	var customers []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana", customers[0].Name)
}

func TestDataImportRejectsIncompleteFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"products":[],"customers":[]}`), 0o644))

	resp, err := run(t, dir, "data", "import", src)
	require.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "format", resp.Kind)
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()

	_, err := run(t, dir, "--data-dir", other, "--file", "shop.json", "data", "load")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(other, "shop.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "sales-db.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestInvalidPayload(t *testing.T) {
	cases := map[string][]string{
		"unknown field": {"product", "upsert", "--json", `{"name":"Shirt","colour":"red"}`},
		"not json":      {"sale", "record", "--json", `{"items":`},
		"missing":       {"customer", "upsert"},
		"wrong type":    {"inventory", "adjust", "--json", `{"productId":"p1","size":"M","quantityChange":"5"}`},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := run(t, t.TempDir(), args...)
			require.ErrorIs(t, err, ErrOperationFailed)
			assert.False(t, resp.Success)
			assert.Equal(t, "validation", resp.Kind)
			assert.Contains(t, resp.Error, "--json payload")
		})
	}
}

func TestReportSummary(t *testing.T) {
	dir := t.TempDir()

	resp, err := run(t, dir, "report", "summary", "--recent", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalSales":0,"saleCount":0,"averageTicket":0,"totalStock":0,"customerCount":0,"recentSales":[]}`, string(resp.Data))
}
