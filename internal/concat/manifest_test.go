package concat_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"podclip/internal/concat"
	"podclip/internal/services"
)

func TestBuildManifest(t *testing.T) {
	got, err := concat.BuildManifest([]string{"a.mp4", "b.mp4"})
	if err != nil {
		t.Fatalf("BuildManifest failed: %v", err)
	}
	if got != "file 'a.mp4'\nfile 'b.mp4'" {
		t.Fatalf("unexpected manifest %q", got)
	}
}

func TestBuildManifestSingleKey(t *testing.T) {
	got, err := concat.BuildManifest([]string{"ep/clips/c/segments/000.mp4"})
	if err != nil {
		t.Fatalf("BuildManifest failed: %v", err)
	}
	if got != "file 'ep/clips/c/segments/000.mp4'" {
		t.Fatalf("unexpected manifest %q", got)
	}
}

func TestBuildManifestRejectsEmpty(t *testing.T) {
	for _, keys := range [][]string{nil, {}} {
		if _, err := concat.BuildManifest(keys); !errors.Is(err, services.ErrEmptySegmentList) {
			t.Fatalf("expected ErrEmptySegmentList, got %v", err)
		}
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concat.txt")
	if err := concat.WriteManifest(path, []string{"x.mp4", "y.mp4", "z.mp4"}); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if string(data) != "file 'x.mp4'\nfile 'y.mp4'\nfile 'z.mp4'" {
		t.Fatalf("unexpected manifest contents %q", data)
	}
}

func TestWriteManifestRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concat.txt")
	if err := concat.WriteManifest(path, nil); !errors.Is(err, services.ErrEmptySegmentList) {
		t.Fatalf("expected ErrEmptySegmentList, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no manifest file, stat err=%v", err)
	}
}

func TestNewPlan(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "list.txt")
	plan, err := concat.NewPlan([]string{"a.mp4", "b.mp4"}, manifestPath, "out.mp4")
	if err != nil {
		t.Fatalf("NewPlan failed: %v", err)
	}
	want := []string{"-hide_banner", "-f", "concat", "-safe", "0", "-i", manifestPath, "-c", "copy", "out.mp4"}
	if !slices.Equal(plan.Args, want) {
		t.Fatalf("args = %v, want %v", plan.Args, want)
	}
	if err := plan.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if string(data) != plan.Manifest {
		t.Fatalf("written manifest %q differs from plan %q", data, plan.Manifest)
	}
}

func TestNewPlanRequiresPaths(t *testing.T) {
	if _, err := concat.NewPlan([]string{"a.mp4"}, "", "out.mp4"); err == nil {
		t.Fatal("expected error for missing manifest path")
	}
	if _, err := concat.NewPlan([]string{"a.mp4"}, "list.txt", " "); err == nil {
		t.Fatal("expected error for missing output path")
	}
}
