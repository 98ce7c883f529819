package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_OrNilWithoutFields(t *testing.T) {
	verr := NewValidationError()
	assert.NoError(t, verr.OrNil())
}

func TestValidationError_CollectsMessagesPerField(t *testing.T) {
	verr := NewValidationError()
	verr.Add("username", MsgUsernameRange)
	verr.Add("confirm_password", MsgPasswordMatch)
	verr.Add("username", MsgUsernameTaken)

	require.Error(t, verr.OrNil())
	assert.True(t, verr.Has("username"))
	assert.False(t, verr.Has("password"))
	assert.Equal(t, []string{MsgUsernameRange, MsgUsernameTaken}, verr.Fields["username"])
	assert.Equal(t,
		"validation failed: confirm_password: "+MsgPasswordMatch+"; username: "+MsgUsernameRange+" "+MsgUsernameTaken,
		verr.Error())
}

func TestAsValidation_UnwrapsWrappedErrors(t *testing.T) {
	verr := NewValidationError()
	verr.Add("task_name", MsgRequired)
	wrapped := fmt.Errorf("create task: %w", verr)

	got, ok := AsValidation(wrapped)
	require.True(t, ok)
	assert.Same(t, verr, got)

	_, ok = AsValidation(errors.New("boom"))
	assert.False(t, ok)
}

func TestSentinels_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrForbidden))
	assert.Equal(t, "Login Unsuccessful. Please check Username Or Password", ErrInvalidCredentials.Error())
}
