package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

func bindErr(t *testing.T, payload string) error {
	t.Helper()
	var req sampleRequest
	return binding.JSON.BindBody([]byte(payload), &req)
}

func TestToDetailsRequired(t *testing.T) {
	Init()

	err := bindErr(t, `{}`)
	require.Error(t, err)
	details := ToDetails(err)
	assert.Equal(t, "is required", details["username"])
	assert.Equal(t, "is required", details["email"])
}

func TestToDetailsEmailFormat(t *testing.T) {
	Init()

	err := bindErr(t, `{"username":"jdoe","email":"nope"}`)
	require.Error(t, err)
	assert.Equal(t, "must be a valid email", ToDetails(err)["email"])
}

func TestToDetailsInvalidJSON(t *testing.T) {
	err := bindErr(t, `{not json`)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
