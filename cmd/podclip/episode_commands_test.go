package main

import (
	"encoding/json"
	"testing"

	"podclip/internal/episode"
)

func decodeEpisode(t *testing.T, out string) episode.Response {
	t.Helper()
	var resp episode.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode episode: %v\n%s", err, out)
	}
	return resp
}

func TestEpisodeLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"--json", "episode", "create", "ep-1",
		"--tenant", "tenant-a",
		"--title", "Pilot",
		"--number", "1",
		"--platform", "youtube",
		"--platform", " spotify ",
	}, env.configPath)
	if err != nil {
		t.Fatalf("episode create: %v", err)
	}
	created := decodeEpisode(t, out)
	if created.Status == nil || *created.Status != "Draft" {
		t.Fatalf("expected Draft status, got %v", created.Status)
	}
	if len(created.Platforms) != 2 || created.Platforms[1] != "spotify" {
		t.Fatalf("unexpected platforms %v", created.Platforms)
	}
	if created.Summary != "" || created.Themes != nil {
		t.Fatalf("expected empty optional fields to be omitted: %+v", created)
	}

	out, _, err = runCLI(t, []string{"--json", "episode", "status", "ep-1", "In Review", "--tenant", "tenant-a"}, env.configPath)
	if err != nil {
		t.Fatalf("episode status: %v", err)
	}
	updated := decodeEpisode(t, out)
	if updated.Status == nil || *updated.Status != "In Review" {
		t.Fatalf("expected In Review, got %v", updated.Status)
	}

	out, _, err = runCLI(t, []string{"episode", "show", "ep-1", "--tenant", "tenant-a"}, env.configPath)
	if err != nil {
		t.Fatalf("episode show: %v", err)
	}
	requireContains(t, out, "Pilot")
	requireContains(t, out, "In Review")
	requireContains(t, out, "History:")
	requireContains(t, out, "Draft")
}

func TestEpisodeScopedToTenant(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"episode", "create", "ep-1", "--tenant", "tenant-a", "--title", "Pilot"}, env.configPath); err != nil {
		t.Fatalf("episode create: %v", err)
	}
	_, _, err := runCLI(t, []string{"episode", "show", "ep-1", "--tenant", "tenant-b"}, env.configPath)
	if err == nil {
		t.Fatal("expected other tenant lookup to fail")
	}
	requireContains(t, err.Error(), "not found")
}

func TestEpisodeRequiresTenant(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"episode", "show", "ep-1"}, env.configPath)
	if err == nil {
		t.Fatal("expected missing --tenant to fail")
	}
	requireContains(t, err.Error(), "tenant")
}

func TestEpisodeCreateWithoutStatus(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "episode", "create", "ep-2", "--tenant", "tenant-a", "--status", ""}, env.configPath)
	if err != nil {
		t.Fatalf("episode create: %v", err)
	}
	if resp := decodeEpisode(t, out); resp.Status != nil {
		t.Fatalf("expected null status, got %q", *resp.Status)
	}
}
