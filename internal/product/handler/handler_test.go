package handler

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/product/dto"
	"github.com/fekuna/omnipos-local-store/internal/product/repository"
	"github.com/fekuna/omnipos-local-store/internal/product/usecase"
	"github.com/fekuna/omnipos-local-store/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *ProductHandler {
	t.Helper()
	engine, err := storage.Open(context.Background(), storage.Config{Path: filepath.Join(t.TempDir(), "db.json")}, logger.NewNop())
	require.NoError(t, err)
	uc := usecase.NewProductUseCase(repository.NewDocumentRepository(engine), logger.NewNop())
	return NewProductHandler(uc, logger.NewNop())
}

func TestUpsertProductEnvelope(t *testing.T) {
	h := newHandler(t)
	ctx := context.Background()
	p := decimal.NewFromInt(10)

	ok := h.UpsertProduct(ctx, &dto.UpsertProductInput{Name: "Shirt", Price: &p})
	require.True(t, ok.Success)
	created, isProduct := ok.Data.(*model.Product)
	require.True(t, isProduct)

	list := h.ListProducts(ctx, &dto.ProductFilters{})
	require.True(t, list.Success)
	assert.Equal(t, 1, list.Data.(ListProductsResponse).Total)

	got := h.GetProduct(ctx, created.ID)
	assert.True(t, got.Success)

	bad := h.UpsertProduct(ctx, &dto.UpsertProductInput{Name: "Shirt"})
	assert.False(t, bad.Success)
	assert.Equal(t, apperror.KindValidation, bad.Kind)
	assert.Equal(t, "product price is required", bad.Error)

	del := h.DeleteProduct(ctx, created.ID)
	assert.True(t, del.Success)
	assert.False(t, h.GetProduct(ctx, created.ID).Success)
	assert.False(t, h.FindBySKU(ctx, "none").Success)
}
