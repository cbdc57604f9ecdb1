package fileio

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	return NewProvider(t.TempDir())
}

func TestRoundtrip(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "fileio.roundtrip", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "roundtrip failed: %v", result.Error)
	assert.Equal(t, len(roundtripPayload), result.Data["bytes"])

	// the demonstration cleans up after itself
	path := result.Data["path"].(string)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoundtripCustomPayload(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "fileio.roundtrip", map[string]interface{}{
		"payload": "short",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 5, result.Data["bytes"])
}

func TestCleanupIsIdempotentObservable(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "fileio.cleanup", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "cleanup failed: %v", result.Error)
}

func TestPaths(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "fileio.paths", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "paths failed: %v", result.Error)
	assert.Equal(t, false, result.Data["exists"])
	assert.Equal(t, ".txt", result.Data["ext"])
	assert.Equal(t, true, result.Data["globbed"])
	assert.EqualValues(t, 3, result.Data["walked"])
}

func TestFormats(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "fileio.formats", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "formats failed: %v", result.Error)
	assert.Equal(t, 3, result.Data["formats"])
	assert.Len(t, result.Lines(), 3)
}

func TestArchive(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "fileio.archive", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "archive failed: %v", result.Error)
	assert.Less(t, result.Data["compressed_size"], result.Data["original_size"])
}

func TestDetect(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "fileio.detect", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "detect failed: %v", result.Error)
	assert.Contains(t, result.Data["plain"], "text/plain")
	assert.Equal(t, "application/gzip", result.Data["gzipped"])
}

func TestUnknownTool(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "fileio.bogus", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}
