package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tvnav/internal/app"
	"github.com/atomicstack/tvnav/internal/focus"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig     = "TVNAV_CONFIG"
	envCatalog    = "TVNAV_CATALOG"
	envDB         = "TVNAV_DB"
	envScreen     = "TVNAV_SCREEN"
	envWidth      = "TVNAV_WIDTH"
	envHeight     = "TVNAV_HEIGHT"
	envShowFooter = "TVNAV_FOOTER"
	envWatch      = "TVNAV_WATCH"
	envEpsilon    = "TVNAV_EPSILON"
	envLaneWeight = "TVNAV_LANE_WEIGHT"
	envTrace      = "TVNAV_TRACE"
	envLogFile    = "TVNAV_LOG_FILE"
)

// envByFlag pairs each file-backed flag with its environment variable.
var envByFlag = map[string]string{
	"catalog":     envCatalog,
	"db":          envDB,
	"screen":      envScreen,
	"width":       envWidth,
	"height":      envHeight,
	"footer":      envShowFooter,
	"epsilon":     envEpsilon,
	"lane-weight": envLaneWeight,
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then the TOML file, then built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	defaults := DefaultFile()

	fs := flag.NewFlagSet("tvnav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a TOML config file")
	catalog := fs.String("catalog", envOrDefault(env, envCatalog, defaults.Catalog), "path to a catalogue TOML file (empty uses the built-in catalogue)")
	db := fs.String("db", envOrDefault(env, envDB, defaults.DB), "path to the SQLite database (\":memory:\" disables persistence)")
	screen := fs.String("screen", envOrDefault(env, envScreen, defaults.Screen), "screen to open on start")
	width := fs.Int("width", envOrInt(env, envWidth, defaults.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, defaults.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, defaults.Footer), "enable footer hint row")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload the catalogue file when it changes")
	epsilon := fs.Float64("epsilon", envOrFloat(env, envEpsilon, defaults.Navigation.Epsilon), "minimum offset in cells for a neighbour to count as being in a direction")
	laneWeight := fs.Float64("lane-weight", envOrFloat(env, envLaneWeight, defaults.Navigation.LaneWeight), "penalty multiplier for perpendicular offset")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	file := defaults
	if *configPath != "" {
		loaded, err := LoadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		file = loaded
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, key := range envByFlag {
		if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
			set[name] = true
		}
	}
	if !set["catalog"] {
		*catalog = file.Catalog
	}
	if !set["db"] {
		*db = file.DB
	}
	if !set["screen"] {
		*screen = file.Screen
	}
	if !set["width"] {
		*width = file.Width
	}
	if !set["height"] {
		*height = file.Height
	}
	if !set["footer"] {
		*footer = file.Footer
	}
	if !set["epsilon"] {
		*epsilon = file.Navigation.Epsilon
	}
	if !set["lane-weight"] {
		*laneWeight = file.Navigation.LaneWeight
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:  *catalog,
			DBPath:       *db,
			Screen:       strings.ToLower(strings.TrimSpace(*screen)),
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			WatchCatalog: *watch,
			Selector:     focus.Selector{Epsilon: *epsilon, LaneWeight: *laneWeight},
			Keys: focus.Bindings{
				Up:     file.Keys.Up,
				Down:   file.Keys.Down,
				Left:   file.Keys.Left,
				Right:  file.Keys.Right,
				Select: file.Keys.Select,
				Back:   file.Keys.Back,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: *configPath,
		Flags: map[string]string{
			"config":     *configPath,
			"catalog":    *catalog,
			"db":         *db,
			"screen":     *screen,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"watch":      strconv.FormatBool(*watch),
			"epsilon":    strconv.FormatFloat(*epsilon, 'g', -1, 64),
			"laneWeight": strconv.FormatFloat(*laneWeight, 'g', -1, 64),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the navigator or the screens cannot use.
func Validate(cfg Config) error {
	sel := cfg.App.Selector
	if sel.Epsilon < 0 {
		return fmt.Errorf("epsilon must be >= 0 (got %g)", sel.Epsilon)
	}
	if sel.LaneWeight <= 0 {
		return fmt.Errorf("lane weight must be > 0 (got %g)", sel.LaneWeight)
	}
	if !app.KnownScreen(cfg.App.Screen) {
		return fmt.Errorf("unknown screen %q (want one of %s)", cfg.App.Screen, strings.Join(app.Screens(), ", "))
	}
	for name, keys := range map[string][]string{
		"up":     cfg.App.Keys.Up,
		"down":   cfg.App.Keys.Down,
		"left":   cfg.App.Keys.Left,
		"right":  cfg.App.Keys.Right,
		"select": cfg.App.Keys.Select,
		"back":   cfg.App.Keys.Back,
	} {
		for _, k := range keys {
			if k == "" {
				return fmt.Errorf("keys.%s contains an empty key name", name)
			}
		}
	}
	return nil
}
