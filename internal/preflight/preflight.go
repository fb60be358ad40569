package preflight

import (
	"context"

	"podclip/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Optional bool   `json:"optional,omitempty"`
	Detail   string `json:"detail"`
}

// RunAll executes all preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
	}
	if cfg.Paths.ManifestDir != "" {
		results = append(results, CheckDirectoryAccess("Manifest directory", cfg.Paths.ManifestDir))
	}
	ffmpeg := CheckBinary("FFmpeg", cfg.FFmpegBinary())
	ffmpeg.Optional = true
	results = append(results, ffmpeg)
	return results
}

// Ready reports whether every required check passed.
func Ready(results []Result) bool {
	for _, result := range results {
		if !result.Passed && !result.Optional {
			return false
		}
	}
	return true
}
