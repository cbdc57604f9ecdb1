package fileio

import (
	"context"
	"fmt"

	"github.com/stdtour/stdtour/internal/types"
)

// Provider implements file and path demonstrations
type Provider struct {
	basic    *BasicOps
	paths    *PathOps
	formats  *FormatOps
	archives *ArchiveOps
}

// NewProvider creates a file I/O provider working under baseDir
// (the system temp directory when empty).
func NewProvider(baseDir string) *Provider {
	ops := &FileOps{BaseDir: baseDir}

	return &Provider{
		basic:    &BasicOps{FileOps: ops},
		paths:    &PathOps{FileOps: ops},
		formats:  &FormatOps{FileOps: ops},
		archives: &ArchiveOps{FileOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.paths.GetTools()...)
	tools = append(tools, p.formats.GetTools()...)
	tools = append(tools, p.archives.GetTools()...)

	return types.Service{
		ID:          "fileio",
		Name:        "File Demos",
		Description: "File round-trips, path operations, structured formats, compression",
		Category:    types.CategoryFile,
		Capabilities: []string{
			"roundtrip",
			"cleanup",
			"paths",
			"formats",
			"compression",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, runCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "fileio.roundtrip":
		return p.basic.Roundtrip(ctx, params)
	case "fileio.cleanup":
		return p.basic.Cleanup(ctx)
	case "fileio.paths":
		return p.paths.Paths(ctx)
	case "fileio.formats":
		return p.formats.Formats(ctx)
	case "fileio.archive":
		return p.archives.Archive(ctx)
	case "fileio.detect":
		return p.archives.Detect(ctx)
	default:
		return types.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
