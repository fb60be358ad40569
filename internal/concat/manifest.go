// Package concat plans the FFmpeg concat-demuxer step that joins clip
// segments. It produces the manifest text and argument vector only; running
// the encoder belongs to an external collaborator.
package concat

import (
	"fmt"
	"strings"

	"podclip/internal/fileutil"
	"podclip/internal/services"
)

// BuildManifest renders one "file '<key>'" line per segment key in input
// order, joined by newlines with no trailing newline.
func BuildManifest(keys []string) (string, error) {
	if len(keys) == 0 {
		return "", services.ErrEmptySegmentList
	}
	lines := make([]string, len(keys))
	for i, key := range keys {
		lines[i] = fmt.Sprintf("file '%s'", key)
	}
	return strings.Join(lines, "\n"), nil
}

// WriteManifest builds the manifest for keys and writes it atomically to path.
func WriteManifest(path string, keys []string) error {
	manifest, err := BuildManifest(keys)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("write concat manifest: %w", err)
	}
	return nil
}

// Plan describes an FFmpeg concat invocation.
type Plan struct {
	Manifest     string   `json:"manifest"`
	ManifestPath string   `json:"manifestPath"`
	OutputPath   string   `json:"outputPath"`
	Args         []string `json:"args"`
}

// NewPlan builds the manifest for keys and the ffmpeg arguments that read it
// from manifestPath and stream-copy into outputPath.
func NewPlan(keys []string, manifestPath, outputPath string) (Plan, error) {
	manifest, err := BuildManifest(keys)
	if err != nil {
		return Plan{}, err
	}
	if strings.TrimSpace(manifestPath) == "" {
		return Plan{}, fmt.Errorf("manifest path is required")
	}
	if strings.TrimSpace(outputPath) == "" {
		return Plan{}, fmt.Errorf("output path is required")
	}
	return Plan{
		Manifest:     manifest,
		ManifestPath: manifestPath,
		OutputPath:   outputPath,
		Args: []string{
			"-hide_banner",
			"-f", "concat",
			"-safe", "0",
			"-i", manifestPath,
			"-c", "copy",
			outputPath,
		},
	}, nil
}

// Write persists the plan's manifest to ManifestPath.
func (p Plan) Write() error {
	if err := fileutil.WriteFileAtomic(p.ManifestPath, []byte(p.Manifest), 0o644); err != nil {
		return fmt.Errorf("write concat manifest: %w", err)
	}
	return nil
}
