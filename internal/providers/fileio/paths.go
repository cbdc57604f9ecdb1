package fileio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"github.com/stdtour/stdtour/internal/types"
)

// PathOps handles path inspection demonstrations
type PathOps struct {
	*FileOps
}

// GetTools returns path operation tool definitions
func (p *PathOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fileio.paths",
			Name:        "Path Operations",
			Description: "Existence checks, join/ext/abs manipulation, glob matching, directory walk",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
	}
}

// Paths demonstrates path manipulation, globbing, and walking
func (p *PathOps) Paths(_ context.Context) (*types.Result, error) {
	name := "example.txt"
	_, statErr := os.Stat(name)
	exists := statErr == nil

	joined := filepath.Join(p.tempDir(), "nested", name)
	ext := filepath.Ext(name)

	globbed, err := doublestar.Match("**/*.txt", filepath.ToSlash(filepath.Join("nested", name)))
	if err != nil {
		return types.Failure(fmt.Sprintf("glob failed: %v", err))
	}

	// Walk a small tree we create ourselves, so the count is predictable.
	dir, err := os.MkdirTemp(p.tempDir(), "tour-walk-")
	if err != nil {
		return types.Failure(fmt.Sprintf("failed to create walk dir: %v", err))
	}
	defer os.RemoveAll(dir)

	for _, f := range []string{"a.txt", "b.txt", "c.log"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(f), 0o644); err != nil {
			return types.Failure(fmt.Sprintf("failed to seed walk dir: %v", err))
		}
	}

	var files atomic.Int64
	walkErr := fastwalk.Walk(&fastwalk.DefaultConfig, dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files.Add(1)
		}
		return nil
	})
	if walkErr != nil {
		return types.Failure(fmt.Sprintf("walk failed: %v", walkErr))
	}

	return types.Success(map[string]interface{}{
		"exists":  exists,
		"joined":  joined,
		"ext":     ext,
		"globbed": globbed,
		"walked":  files.Load(),
		"lines": []string{
			fmt.Sprintf("Path %q exists: %t", name, exists),
			fmt.Sprintf("Joined: %s (ext %s)", joined, ext),
			fmt.Sprintf("Matches **/*.txt: %t", globbed),
			fmt.Sprintf("Walked %d files in a seeded directory", files.Load()),
		},
	})
}
