package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tvnav/internal/testutil"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "config.toml", body)
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Screen != "apps" {
		t.Fatalf("expected default screen apps, got %q", cfg.App.Screen)
	}
	if cfg.App.Selector.Epsilon != 0.5 || cfg.App.Selector.LaneWeight != 2 {
		t.Fatalf("unexpected selector defaults %+v", cfg.App.Selector)
	}
	if !cfg.App.WatchCatalog {
		t.Fatalf("expected catalogue watching on by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		"TVNAV_WIDTH=100",
		"TVNAV_HEIGHT=30",
		"TVNAV_FOOTER=true",
		"TVNAV_SCREEN=store",
		"TVNAV_LANE_WEIGHT=3",
		"TVNAV_TRACE=1",
		"TVNAV_LOG_FILE=/tmp/tvnav.log",
		"BROKEN",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("unexpected size %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer from environment")
	}
	if cfg.App.Screen != "store" {
		t.Fatalf("expected store screen, got %q", cfg.App.Screen)
	}
	if cfg.App.Selector.LaneWeight != 3 {
		t.Fatalf("expected lane weight 3, got %g", cfg.App.Selector.LaneWeight)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/tvnav.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "60", "-screen", "Chat"}, []string{"TVNAV_WIDTH=100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 60 {
		t.Fatalf("expected flag width 60, got %d", cfg.App.Width)
	}
	if cfg.App.Screen != "chat" {
		t.Fatalf("expected normalised screen chat, got %q", cfg.App.Screen)
	}
	if cfg.Flags["width"] != "60" {
		t.Fatalf("expected width flag recorded, got %q", cfg.Flags["width"])
	}
	if len(cfg.Args) != 4 {
		t.Fatalf("expected args to be kept, got %v", cfg.Args)
	}
}

func TestLoadArgsConfigFileLayer(t *testing.T) {
	path := writeConfigFile(t, `
catalog = "/srv/catalog.toml"
screen = "settings"
footer = true

[navigation]
epsilon = 1.5
lane_weight = 4

[keys]
up = ["up", "k"]
down = ["down", "j"]
back = ["esc", "q"]
`)
	cfg, err := LoadArgs([]string{"-config", path, "-lane-weight", "2.5"}, []string{"TVNAV_SCREEN=store"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.CatalogPath != "/srv/catalog.toml" {
		t.Fatalf("expected catalogue from file, got %q", cfg.App.CatalogPath)
	}
	if cfg.App.Screen != "store" {
		t.Fatalf("environment should override the file, got %q", cfg.App.Screen)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer from file")
	}
	if cfg.App.Selector.Epsilon != 1.5 {
		t.Fatalf("expected epsilon 1.5 from file, got %g", cfg.App.Selector.Epsilon)
	}
	if cfg.App.Selector.LaneWeight != 2.5 {
		t.Fatalf("flag should override the file, got %g", cfg.App.Selector.LaneWeight)
	}
	if strings.Join(cfg.App.Keys.Down, ",") != "down,j" {
		t.Fatalf("unexpected down keys %v", cfg.App.Keys.Down)
	}
	if len(cfg.App.Keys.Left) != 0 {
		t.Fatalf("unset key lists should stay empty, got %v", cfg.App.Keys.Left)
	}
	if cfg.File != path {
		t.Fatalf("expected config path recorded")
	}
}

func TestLoadArgsConfigFileErrors(t *testing.T) {
	if _, err := LoadArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
	path := writeConfigFile(t, "[keys]\nupp = [\"k\"]\n")
	if _, err := LoadArgs([]string{"-config", path}, nil); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"-unknown"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := map[string]func(*Config){
		"negative epsilon": func(c *Config) { c.App.Selector.Epsilon = -1 },
		"zero lane weight": func(c *Config) { c.App.Selector.LaneWeight = 0 },
		"unknown screen":   func(c *Config) { c.App.Screen = "kitchen" },
		"empty key":        func(c *Config) { c.App.Keys.Back = []string{"esc", ""} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
