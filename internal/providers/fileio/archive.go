package fileio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"

	"github.com/stdtour/stdtour/internal/types"
)

// ArchiveOps handles compression and content sniffing demonstrations
type ArchiveOps struct {
	*FileOps
}

// GetTools returns archive operation tool definitions
func (a *ArchiveOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fileio.archive",
			Name:        "Gzip Round-Trip",
			Description: "Compress bytes with gzip and decompress them back",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
		{
			ID:          "fileio.detect",
			Name:        "Content Detection",
			Description: "Sniff the content type of plain and compressed payloads",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
	}
}

// Archive compresses and decompresses a payload
func (a *ArchiveOps) Archive(_ context.Context) (*types.Result, error) {
	payload := []byte(strings.Repeat(roundtripPayload+" ", 40))

	var compressed bytes.Buffer
	gw := gzip.NewWriter(&compressed)
	if _, err := gw.Write(payload); err != nil {
		return types.Failure(fmt.Sprintf("compress failed: %v", err))
	}
	if err := gw.Close(); err != nil {
		return types.Failure(fmt.Sprintf("compress close failed: %v", err))
	}

	gr, err := gzip.NewReader(bytes.NewReader(compressed.Bytes()))
	if err != nil {
		return types.Failure(fmt.Sprintf("decompress open failed: %v", err))
	}
	decompressed, err := io.ReadAll(gr)
	if err != nil {
		return types.Failure(fmt.Sprintf("decompress failed: %v", err))
	}
	if err := gr.Close(); err != nil {
		return types.Failure(fmt.Sprintf("decompress close failed: %v", err))
	}

	if !bytes.Equal(payload, decompressed) {
		return types.Failure("decompressed bytes differ from original")
	}

	return types.Success(map[string]interface{}{
		"original_size":   len(payload),
		"compressed_size": compressed.Len(),
		"lines": []string{
			fmt.Sprintf("Compressed %d bytes to %d", len(payload), compressed.Len()),
			"Decompressed bytes match the original",
		},
	})
}

// Detect sniffs content types
func (a *ArchiveOps) Detect(_ context.Context) (*types.Result, error) {
	plain := mimetype.Detect([]byte(roundtripPayload))

	var compressed bytes.Buffer
	gw := gzip.NewWriter(&compressed)
	if _, err := gw.Write([]byte(roundtripPayload)); err != nil {
		return types.Failure(fmt.Sprintf("compress failed: %v", err))
	}
	if err := gw.Close(); err != nil {
		return types.Failure(fmt.Sprintf("compress close failed: %v", err))
	}
	gzipped := mimetype.Detect(compressed.Bytes())

	return types.Success(map[string]interface{}{
		"plain":   plain.String(),
		"gzipped": gzipped.String(),
		"lines": []string{
			fmt.Sprintf("Plain payload detected as %s", plain),
			fmt.Sprintf("Gzipped payload detected as %s", gzipped),
		},
	})
}
