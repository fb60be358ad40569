package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"podclip/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckBinary(t *testing.T) {
	if result := CheckBinary("missing", "clearly-not-present-binary"); result.Passed {
		t.Fatal("expected missing binary to fail")
	}
	if result := CheckBinary("empty", " "); result.Passed || result.Detail != "command not configured" {
		t.Fatalf("unexpected result for empty command: %+v", result)
	}
}

func TestRunAllWithStubbedFFmpeg(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries("ffmpeg"))
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	results := RunAll(context.Background(), cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, result := range results {
		if !result.Passed {
			t.Fatalf("expected %s to pass: %s", result.Name, result.Detail)
		}
	}
	if !Ready(results) {
		t.Fatal("expected ready")
	}
}

func TestReadyIgnoresOptionalFailures(t *testing.T) {
	results := []Result{
		{Name: "Data directory", Passed: true},
		{Name: "FFmpeg", Optional: true},
	}
	if !Ready(results) {
		t.Fatal("optional failure should not block readiness")
	}
	results = append(results, Result{Name: "Manifest directory"})
	if Ready(results) {
		t.Fatal("required failure should block readiness")
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil); results != nil {
		t.Fatalf("expected nil, got %v", results)
	}
}
