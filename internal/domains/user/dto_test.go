package user

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValid(t *testing.T) {
	req := RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}
	assert.NoError(t, req.Validate())
}

func TestRegisterRequestRejectsShortPassword(t *testing.T) {
	req := RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "12345"}

	err := req.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "password")
}

func TestRegisterRequestRejectsInvalidEmail(t *testing.T) {
	req := RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret1"}

	err := req.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "email")
}

func TestUpdatePasswordRequestRequiresBothFields(t *testing.T) {
	err := UpdatePasswordRequest{}.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "current_password")
	assert.Contains(t, verrs, "new_password")
}

func TestSerializeExcludesPassword(t *testing.T) {
	u := &User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "$2a$10$hash"}

	out := u.Serialize()
	assert.NotContains(t, out, "password")
	assert.Equal(t, "alice", out["username"])
}
