package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager()
	id := uuid.New()

	ctx := m.SetIdentityIDToContext(context.Background(), id)

	got, ok := m.GetIdentityIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestManager_Missing(t *testing.T) {
	t.Parallel()

	m := NewManager()

	got, ok := m.GetIdentityIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, got)
}
