package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/utils"
)

func parseArgs(t *testing.T, args ...string) (utils.Config, error) {
	t.Helper()
	var got utils.Config
	app := newApp(func(cfg utils.Config) error {
		got = cfg
		return nil
	})
	err := app.Run(append([]string{appName}, args...))
	return got, err
}

func TestCLIDefaults(t *testing.T) {
	cfg, err := parseArgs(t)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := utils.DefaultConfig()
	if cfg.Logging || !cfg.ShowFPS || cfg.Topology != "Moore" || cfg.Rule != want.Rule {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestCLIFlags(t *testing.T) {
	cases := []struct {
		args     []string
		logging  bool
		showFPS  bool
		topology string
	}{
		{[]string{"--Moore"}, false, true, "Moore"},
		{[]string{"-M"}, false, true, "Moore"},
		{[]string{"--Neumann"}, false, true, "Neumann"},
		{[]string{"-N"}, false, true, "Neumann"},
		{[]string{"--logging"}, true, true, "Moore"},
		{[]string{"-L"}, true, true, "Moore"},
		{[]string{"--no-logging"}, false, true, "Moore"},
		{[]string{"-S"}, false, true, "Moore"},
		{[]string{"--no-show-fps"}, false, false, "Moore"},
		{[]string{"-L", "-S", "-N"}, true, true, "Neumann"},
		{[]string{"-L", "--no-show-fps", "-N"}, true, false, "Neumann"},
	}
	for _, tc := range cases {
		cfg, err := parseArgs(t, tc.args...)
		if err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if cfg.Logging != tc.logging || cfg.ShowFPS != tc.showFPS || cfg.Topology != tc.topology {
			t.Fatalf("%v: logging=%v show_fps=%v topology=%s", tc.args, cfg.Logging, cfg.ShowFPS, cfg.Topology)
		}
	}
}

func TestCLIScanAndPoolToggles(t *testing.T) {
	cases := []struct {
		args    []string
		bounded bool
		pool    bool
	}{
		{nil, true, true},
		{[]string{"--no-bounded"}, false, true},
		{[]string{"--bounded"}, true, true},
		{[]string{"--no-memory-pool"}, true, false},
		{[]string{"--no-bounded", "--no-memory-pool"}, false, false},
	}
	for _, tc := range cases {
		cfg, err := parseArgs(t, tc.args...)
		if err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if cfg.UseBoundedGrid != tc.bounded || cfg.UseMemoryPool != tc.pool {
			t.Fatalf("%v: bounded=%v pool=%v", tc.args, cfg.UseBoundedGrid, cfg.UseMemoryPool)
		}
	}

	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"use_bounded_grid": false, "use_memory_pool": false}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := parseArgs(t, "--config", path, "--bounded", "--memory-pool")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !cfg.UseBoundedGrid || !cfg.UseMemoryPool {
		t.Fatalf("flags did not override file: bounded=%v pool=%v", cfg.UseBoundedGrid, cfg.UseMemoryPool)
	}
}

func TestCLIOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"width": 20, "height": 10, "rule": "b36/s23"}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := parseArgs(t, "--config", path, "--height", "7", "--init", "dot", "--frame-rate", "5ms", "-g", "3")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 7 || cfg.Rule != "b36/s23" || cfg.InitMode != "dot" {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.FrameRate != 5*time.Millisecond || cfg.MaxGenerations != 3 {
		t.Fatalf("frame rate %v, generations %d", cfg.FrameRate, cfg.MaxGenerations)
	}
}

func TestCLIRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"--rule", "garbage"},
		{"-M", "-N"},
		{"--width", "0"},
		{"--init", "glider"},
	} {
		called := false
		app := newApp(func(utils.Config) error {
			called = true
			return nil
		})
		if err := app.Run(append([]string{appName}, args...)); err == nil {
			t.Fatalf("%v accepted", args)
		}
		if called {
			t.Fatalf("%v reached the game loop", args)
		}
	}
}
