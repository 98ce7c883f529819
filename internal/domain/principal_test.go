package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserID_RoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)

	id, ok := UserIDFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(42), id)

	id, err := RequireUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestUserID_AbsentOrZero(t *testing.T) {
	_, ok := UserIDFrom(context.Background())
	assert.False(t, ok)

	_, ok = UserIDFrom(WithUserID(context.Background(), 0))
	assert.False(t, ok)

	_, err := RequireUserID(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
