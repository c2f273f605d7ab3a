package envelope

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	b, err := json.Marshal(OK(map[string]string{"path": "/tmp/b.json"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"path":"/tmp/b.json"}}`, string(b))
}

func TestFailCarriesKind(t *testing.T) {
	env := From(nil, apperror.Validation("name is required"))
	assert.False(t, env.Success)
	assert.Equal(t, "name is required", env.Error)
	assert.Equal(t, apperror.KindValidation, env.Kind)

	env = Fail(errors.New("disk on fire"))
	assert.Equal(t, apperror.KindInternal, env.Kind)
}
