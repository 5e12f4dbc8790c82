package config

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/decker502/proposal/pkg/embedded"
)

func TestLoadRuntimeOptionsDefaults(t *testing.T) {
	for _, k := range []string{"PROPOSAL_VERBOSE", "PROPOSAL_SEED", "PROPOSAL_CONFIG", "PROPOSAL_FULLSCREEN", "PROPOSAL_MUTE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	opts, err := LoadRuntimeOptions()
	if err != nil {
		t.Fatalf("LoadRuntimeOptions: %v", err)
	}
	if opts != (RuntimeOptions{}) {
		t.Errorf("defaults = %+v, want zero options", opts)
	}
}

func TestLoadRuntimeOptionsFromEnv(t *testing.T) {
	t.Setenv("PROPOSAL_VERBOSE", "true")
	t.Setenv("PROPOSAL_SEED", "42")
	t.Setenv("PROPOSAL_CONFIG", "/tmp/scene.yaml")
	t.Setenv("PROPOSAL_FULLSCREEN", "1")
	t.Setenv("PROPOSAL_MUTE", "true")

	opts, err := LoadRuntimeOptions()
	if err != nil {
		t.Fatalf("LoadRuntimeOptions: %v", err)
	}
	want := RuntimeOptions{Verbose: true, Seed: 42, ConfigPath: "/tmp/scene.yaml", Fullscreen: true, Mute: true}
	if opts != want {
		t.Errorf("opts = %+v, want %+v", opts, want)
	}
}

func TestLoadRuntimeOptionsBadSeed(t *testing.T) {
	t.Setenv("PROPOSAL_SEED", "forty-two")
	if _, err := LoadRuntimeOptions(); err == nil {
		t.Error("a non-numeric seed should fail")
	}
}

func TestRuntimeOptionsLoadScene(t *testing.T) {
	data, err := os.ReadFile("../../data/scene.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	embedded.Init(fstest.MapFS{DefaultScenePath: {Data: data}})
	defer embedded.Init(nil)

	cfg, err := RuntimeOptions{}.LoadScene()
	if err != nil {
		t.Fatalf("embedded LoadScene: %v", err)
	}
	if cfg.Hearts.Count != 25 {
		t.Errorf("hearts = %d, want 25", cfg.Hearts.Count)
	}

	cfg, err = RuntimeOptions{ConfigPath: "../../data/scene.yaml"}.LoadScene()
	if err != nil {
		t.Fatalf("file LoadScene: %v", err)
	}
	if len(cfg.Wizard.Panels) != 5 {
		t.Errorf("panels = %d, want 5", len(cfg.Wizard.Panels))
	}

	if _, err := (RuntimeOptions{ConfigPath: "missing.yaml"}).LoadScene(); err == nil {
		t.Error("a missing file should fail")
	}
}
