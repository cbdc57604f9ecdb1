package fileio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stdtour/stdtour/internal/types"
)

const roundtripPayload = "Hello from the standard library tour!"

// BasicOps handles create/write/read/delete demonstrations
type BasicOps struct {
	*FileOps
}

// GetTools returns basic file operation tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fileio.roundtrip",
			Name:        "File Round-Trip",
			Description: "Write known bytes to a fresh file, read them back, verify byte equality",
			Parameters: []types.Parameter{
				{Name: "payload", Type: "string", Description: "Bytes to write (default greeting)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "fileio.cleanup",
			Name:        "Idempotent Cleanup",
			Description: "Remove a created file; a second removal reports not-found",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
	}
}

// Roundtrip writes a payload and reads it back
func (b *BasicOps) Roundtrip(_ context.Context, params map[string]interface{}) (*types.Result, error) {
	payload := roundtripPayload
	if v, ok := params["payload"].(string); ok && v != "" {
		payload = v
	}

	file, err := os.CreateTemp(b.tempDir(), "tour-*.txt")
	if err != nil {
		return types.Failure(fmt.Sprintf("failed to create file: %v", err))
	}
	path := file.Name()
	defer os.Remove(path)

	if _, err := file.WriteString(payload); err != nil {
		file.Close()
		return types.Failure(fmt.Sprintf("failed to write: %v", err))
	}
	if err := file.Close(); err != nil {
		return types.Failure(fmt.Sprintf("failed to close: %v", err))
	}

	read, err := os.ReadFile(path)
	if err != nil {
		return types.Failure(fmt.Sprintf("failed to read back: %v", err))
	}
	if !bytes.Equal(read, []byte(payload)) {
		return types.Failure("read bytes differ from written bytes")
	}

	return types.Success(map[string]interface{}{
		"path":  path,
		"bytes": len(read),
		"lines": []string{
			fmt.Sprintf("Created %s and wrote %d bytes", filepath.Base(path), len(payload)),
			fmt.Sprintf("Read back: %s", string(read)),
		},
	})
}

// Cleanup removes a file twice; the second removal must report not-found
func (b *BasicOps) Cleanup(_ context.Context) (*types.Result, error) {
	file, err := os.CreateTemp(b.tempDir(), "tour-cleanup-*.txt")
	if err != nil {
		return types.Failure(fmt.Sprintf("failed to create file: %v", err))
	}
	path := file.Name()
	file.Close()

	if err := os.Remove(path); err != nil {
		return types.Failure(fmt.Sprintf("first removal failed: %v", err))
	}

	secondErr := os.Remove(path)
	if secondErr == nil {
		return types.Failure("second removal unexpectedly succeeded")
	}
	if !errors.Is(secondErr, fs.ErrNotExist) {
		return types.Failure(fmt.Sprintf("second removal failed with unexpected error: %v", secondErr))
	}

	return types.Success(map[string]interface{}{
		"path": path,
		"lines": []string{
			fmt.Sprintf("Removed %s", filepath.Base(path)),
			"Second removal reported not-found, as it should",
		},
	})
}
