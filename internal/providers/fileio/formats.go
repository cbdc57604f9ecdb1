package fileio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/stdtour/stdtour/internal/types"
)

// FormatOps handles structured file format demonstrations
type FormatOps struct {
	*FileOps
}

// sample is the value every format round-trips.
type sample struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Count int    `json:"count" yaml:"count" toml:"count"`
}

// GetTools returns format operation tool definitions
func (f *FormatOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fileio.formats",
			Name:        "Format Round-Trips",
			Description: "Round-trip one value through JSON, YAML, and TOML files",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
	}
}

// Formats round-trips a value through each structured format
func (f *FormatOps) Formats(_ context.Context) (*types.Result, error) {
	dir, err := os.MkdirTemp(f.tempDir(), "tour-formats-")
	if err != nil {
		return types.Failure(fmt.Sprintf("failed to create format dir: %v", err))
	}
	defer os.RemoveAll(dir)

	original := sample{Name: "tour", Count: 20}
	var lines []string

	codecs := []struct {
		name      string
		marshal   func(interface{}) ([]byte, error)
		unmarshal func([]byte, interface{}) error
	}{
		{"json", sonic.Marshal, sonic.Unmarshal},
		{"yaml", yaml.Marshal, yaml.Unmarshal},
		{"toml", toml.Marshal, toml.Unmarshal},
	}

	for _, codec := range codecs {
		data, err := codec.marshal(original)
		if err != nil {
			return types.Failure(fmt.Sprintf("%s marshal failed: %v", codec.name, err))
		}

		path := filepath.Join(dir, "sample."+codec.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return types.Failure(fmt.Sprintf("%s write failed: %v", codec.name, err))
		}

		read, err := os.ReadFile(path)
		if err != nil {
			return types.Failure(fmt.Sprintf("%s read failed: %v", codec.name, err))
		}

		var decoded sample
		if err := codec.unmarshal(read, &decoded); err != nil {
			return types.Failure(fmt.Sprintf("%s unmarshal failed: %v", codec.name, err))
		}
		if decoded != original {
			return types.Failure(fmt.Sprintf("%s round-trip mismatch: %+v", codec.name, decoded))
		}

		lines = append(lines, fmt.Sprintf("%s round-trip: %d bytes, value intact", codec.name, len(data)))
	}

	return types.Success(map[string]interface{}{
		"formats": len(codecs),
		"lines":   lines,
	})
}
