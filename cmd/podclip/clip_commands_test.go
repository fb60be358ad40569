package main

import (
	"encoding/json"
	"testing"

	"podclip/internal/store"
)

func TestClipUpdateAndList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"--json", "clip", "update", "ep-1", "c2",
		"--storage-key", "ep-1/clips/c2/clip.mp4",
		"--file-size", "2048",
		"--duration", "12.5",
		"--metadata", `{"encoder":"x264"}`,
	}, env.configPath)
	if err != nil {
		t.Fatalf("clip update: %v", err)
	}
	var clip store.Clip
	if err := json.Unmarshal([]byte(out), &clip); err != nil {
		t.Fatalf("decode clip: %v", err)
	}
	if clip.Status != "processed" {
		t.Fatalf("expected default status processed, got %q", clip.Status)
	}
	if clip.FileSize == nil || *clip.FileSize != 2048 {
		t.Fatalf("unexpected file size %v", clip.FileSize)
	}
	if clip.ProcessingMetadata["encoder"] != "x264" {
		t.Fatalf("unexpected metadata %v", clip.ProcessingMetadata)
	}

	out, _, err = runCLI(t, []string{
		"--json", "clip", "update", "ep-1", "c1",
		"--status", "failed",
		"--error", "encoder crashed",
		"--error-code", "E42",
	}, env.configPath)
	if err != nil {
		t.Fatalf("clip update failed: %v", err)
	}
	clip = store.Clip{}
	if err := json.Unmarshal([]byte(out), &clip); err != nil {
		t.Fatalf("decode clip: %v", err)
	}
	if clip.ErrorInfo == nil || clip.ErrorInfo.Message != "encoder crashed" || clip.ErrorInfo.Code != "E42" {
		t.Fatalf("unexpected error info %+v", clip.ErrorInfo)
	}

	out, _, err = runCLI(t, []string{"clip", "list", "ep-1"}, env.configPath)
	if err != nil {
		t.Fatalf("clip list: %v", err)
	}
	requireContains(t, out, "Failed")
	requireContains(t, out, "Processed")
	requireContains(t, out, "2048")

	out, _, err = runCLI(t, []string{"--json", "clip", "list", "ep-1"}, env.configPath)
	if err != nil {
		t.Fatalf("clip list --json: %v", err)
	}
	var clips []store.Clip
	if err := json.Unmarshal([]byte(out), &clips); err != nil {
		t.Fatalf("decode clips: %v", err)
	}
	if len(clips) != 2 || clips[0].ClipID != "c1" || clips[1].ClipID != "c2" {
		t.Fatalf("unexpected clip order %+v", clips)
	}
}

func TestClipUpdateKeepsUnsetFields(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"clip", "update", "ep-1", "c1", "--file-size", "10"}, env.configPath); err != nil {
		t.Fatalf("first update: %v", err)
	}
	out, _, err := runCLI(t, []string{"--json", "clip", "update", "ep-1", "c1", "--status", "approved"}, env.configPath)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	var clip store.Clip
	if err := json.Unmarshal([]byte(out), &clip); err != nil {
		t.Fatalf("decode clip: %v", err)
	}
	if clip.Status != "approved" || clip.FileSize == nil || *clip.FileSize != 10 {
		t.Fatalf("expected sparse update to keep file size, got %+v", clip)
	}
}

func TestClipListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "clip", "list", "nothing"}, env.configPath)
	if err != nil {
		t.Fatalf("clip list: %v", err)
	}
	if out != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", out)
	}
}

func TestClipUpdateRejectsBadMetadata(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"clip", "update", "ep-1", "c1", "--metadata", "[1,2]"}, env.configPath)
	if err == nil {
		t.Fatal("expected non-object metadata to fail")
	}
	requireContains(t, err.Error(), "metadata must be a JSON object")
}
