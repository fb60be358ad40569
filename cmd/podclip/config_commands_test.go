package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	requireContains(t, err.Error(), "already exists")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.dataDir)
	requireContains(t, out, "secr****")
	if strings.Contains(out, "secret-token") {
		t.Fatalf("config show leaked a token:\n%s", out)
	}
}

func TestConfigLoadErrorSurfaces(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestConfig(t, env.configPath, "[logging]\nformat = \"xml\"\n")

	_, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err == nil {
		t.Fatal("expected invalid config to fail")
	}
	requireContains(t, err.Error(), "logging.format")
}

func TestDoctorCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	requireContains(t, out, "file present: yes")
	requireContains(t, out, "[OK]")
}
