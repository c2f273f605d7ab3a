package handler

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/customer/dto"
	"github.com/fekuna/omnipos-local-store/internal/customer/repository"
	"github.com/fekuna/omnipos-local-store/internal/customer/usecase"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler(t *testing.T) {
	engine, err := storage.Open(context.Background(), storage.Config{Path: filepath.Join(t.TempDir(), "db.json")}, logger.NewNop())
	require.NoError(t, err)
	h := NewCustomerHandler(usecase.NewCustomerUseCase(repository.NewDocumentRepository(engine), logger.NewNop()), logger.NewNop())
	ctx := context.Background()

	bad := h.UpsertCustomer(ctx, &dto.UpsertCustomerInput{})
	assert.False(t, bad.Success)
	assert.Equal(t, apperror.KindValidation, bad.Kind)

	ok := h.UpsertCustomer(ctx, &dto.UpsertCustomerInput{Name: "Ana"})
	require.True(t, ok.Success)
	c := ok.Data.(*model.Customer)

	list := h.ListCustomers(ctx, nil)
	require.True(t, list.Success)
	assert.Len(t, list.Data.([]model.Customer), 1)

	assert.True(t, h.GetCustomer(ctx, c.ID).Success)
	assert.True(t, h.DeleteCustomer(ctx, c.ID).Success)
	assert.False(t, h.GetCustomer(ctx, c.ID).Success)
}
