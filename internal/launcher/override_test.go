package launcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOverrideStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "launch-target.json")
	s := NewFileOverrideStore(path)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Set(ctx, "/opt/app/bin"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"/opt/app/bin"}`, string(data))

	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/opt/app/bin", got)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileOverrideStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch-target.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o600))

	_, err := NewFileOverrideStore(path).Get(context.Background())
	assert.ErrorContains(t, err, "decode override file")
}
