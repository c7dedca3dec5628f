package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/tvnav/internal/app"
	"github.com/atomicstack/tvnav/internal/config"
	"github.com/atomicstack/tvnav/internal/logging"
	"github.com/atomicstack/tvnav/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the session was started with: flags as
// typed, the resolved navigation tuning and the terminal it landed in.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"navigation": navigationSummary{
			Screen:     cfg.App.Screen,
			Epsilon:    cfg.App.Selector.Epsilon,
			LaneWeight: cfg.App.Selector.LaneWeight,
			CustomKeys: customKeyCount(cfg),
		},
		"terminal": probeTerminal(),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type navigationSummary struct {
	Screen     string  `json:"screen"`
	Epsilon    float64 `json:"epsilon"`
	LaneWeight float64 `json:"lane_weight"`
	CustomKeys int     `json:"custom_keys"`
}

func customKeyCount(cfg config.Config) int {
	k := cfg.App.Keys
	n := 0
	for _, keys := range [][]string{k.Up, k.Down, k.Left, k.Right, k.Select, k.Back} {
		n += len(keys)
	}
	return n
}

// terminal is the first standard stream that is a TTY, with its size. A
// zero Source means the app was started without one and the model falls
// back to its fixed frame size.
type terminal struct {
	Source string   `json:"source,omitempty"`
	Width  int      `json:"width,omitempty"`
	Height int      `json:"height,omitempty"`
	Checks []string `json:"checks"`
	Error  string   `json:"error,omitempty"`
}

func probeTerminal() terminal {
	var out terminal
	for _, stream := range []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stdin", os.Stdin},
		{"stderr", os.Stderr},
	} {
		out.Checks = append(out.Checks, stream.name)
		fd := int(stream.file.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			out.Error = err.Error()
			continue
		}
		out.Source, out.Width, out.Height = stream.name, width, height
		break
	}
	return out
}
