package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func openAt(t *testing.T, path string, strict bool) (*Engine, error) {
	t.Helper()
	return Open(context.Background(), Config{Path: path, StrictLoad: strict}, logger.NewNop())
}

func TestOpenCreatesDefaultDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sales-db.json")

	e, err := openAt(t, path, false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[],"customers":[],"sales":[]}`, string(data))
	assert.Equal(t, model.NewDocument(), e.Snapshot())
}

func TestLoadFillsMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products":[{"id":"p1","name":"Shirt","price":10}],"sales":null}`), 0o644))

	e, err := openAt(t, path, false)
	require.NoError(t, err)

	doc := e.Snapshot()
	require.Len(t, doc.Products, 1)
	assert.Equal(t, model.StockBySize{}, doc.Products[0].StockBySize)
	assert.NotNil(t, doc.Customers)
	assert.NotNil(t, doc.Sales)
	assert.Empty(t, doc.Sales)
}

func TestLoadQuarantinesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	corrupt := []byte(`{"products": [`)
	require.NoError(t, os.WriteFile(path, corrupt, 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	e, err := Open(context.Background(), Config{Path: path}, logger.FromZap(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, model.NewDocument(), e.Snapshot())

	matches, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	kept, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, corrupt, kept)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[],"customers":[],"sales":[]}`, string(data))

	assert.Equal(t, 1, logs.FilterMessage("corrupt document moved aside, starting empty").Len())
}

func TestLoadStrictLeavesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0o644))

	_, err := openAt(t, path, true)
	require.Error(t, err)
	assert.True(t, apperror.IsStorage(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(data))
}

func TestLoadWarnsOnDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products":[],"customers":[{"id":"c1","name":"Ana"},{"id":"c1","name":"Bea"}],"sales":[]}`), 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	e, err := Open(context.Background(), Config{Path: path}, logger.FromZap(zap.New(core)))
	require.NoError(t, err)

	assert.Len(t, e.Snapshot().Customers, 2)
	assert.Equal(t, 1, logs.FilterMessage("document breaks an invariant").Len())
}

func TestUpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	e, err := openAt(t, path, false)
	require.NoError(t, err)

	err = e.Update(context.Background(), func(doc *model.Document) error {
		doc.Customers = append(doc.Customers, model.Customer{ID: "c1", Name: "Ana"})
		return nil
	})
	require.NoError(t, err)

	reopened, err := openAt(t, path, false)
	require.NoError(t, err)
	assert.Equal(t, []model.Customer{{ID: "c1", Name: "Ana"}}, reopened.Snapshot().Customers)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestUpdateErrorSkipsPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	e, err := openAt(t, path, false)
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	boom := errors.New("rejected")
	err = e.Update(context.Background(), func(doc *model.Document) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateWriteFailureKeepsMutationInMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	e, err := openAt(t, path, false)
	require.NoError(t, err)

	// A non-empty directory at the target makes the final rename fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.MkdirAll(filepath.Join(path, "blocker"), 0o755))

	err = e.Update(context.Background(), func(doc *model.Document) error {
		doc.Customers = append(doc.Customers, model.Customer{ID: "c1", Name: "Ana"})
		return nil
	})
	require.Error(t, err)
	assert.True(t, apperror.IsStorage(err))
	assert.Len(t, e.Snapshot().Customers, 1)
}

func TestSnapshotIsACopy(t *testing.T) {
	e, err := openAt(t, filepath.Join(t.TempDir(), "db.json"), false)
	require.NoError(t, err)
	require.NoError(t, e.Update(context.Background(), func(doc *model.Document) error {
		doc.Products = append(doc.Products, model.Product{ID: "p1", Name: "Shirt", StockBySize: model.StockBySize{"M": 5}})
		return nil
	}))

	snap := e.Snapshot()
	snap.Products[0].StockBySize["M"] = 0

	assert.Equal(t, 5, e.Snapshot().Products[0].StockBySize["M"])
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	e, err := openAt(t, filepath.Join(t.TempDir(), "db.json"), false)
	require.NoError(t, err)
	require.NoError(t, e.Update(context.Background(), func(doc *model.Document) error {
		doc.Products = append(doc.Products, model.Product{ID: "p1", Name: "Shirt", StockBySize: model.StockBySize{"M": 0}})
		return nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = e.Update(context.Background(), func(doc *model.Document) error {
				doc.Products[0].StockBySize["M"]++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, e.Snapshot().Products[0].StockBySize["M"])
}

func TestExportMatchesStoredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	e, err := openAt(t, path, false)
	require.NoError(t, err)
	require.NoError(t, e.Update(context.Background(), func(doc *model.Document) error {
		doc.Sales = append(doc.Sales, model.Sale{
			ID:    "s1",
			Items: []model.SaleItem{{ProductID: "p1", Name: "Shirt", Size: "M", Quantity: 1, Price: decimal.NewFromInt(10)}},
			Date:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Total: decimal.NewFromInt(10),
		})
		return nil
	}))

	var buf bytes.Buffer
	require.NoError(t, e.Export(context.Background(), &buf))

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stored, buf.Bytes())
}

func TestCanceledContext(t *testing.T) {
	e, err := openAt(t, filepath.Join(t.TempDir(), "db.json"), false)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = e.Update(ctx, func(doc *model.Document) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
