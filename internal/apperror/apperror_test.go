package apperror

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("record sale: %w", Validation("insufficient stock for %s", "Shirt"))

	assert.True(t, IsValidation(err))
	assert.False(t, IsStorage(err))
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "insufficient stock for Shirt")
}

func TestStorageUnwrapsCause(t *testing.T) {
	err := Storage("persist document", fs.ErrPermission)

	assert.True(t, IsStorage(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Equal(t, "persist document: permission denied", err.Error())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, IsFormat(nil))
	assert.True(t, IsCancelled(Cancelled("backup cancelled")))
	assert.True(t, IsFormat(Format("missing %q", "sales")))
}
