// Package config resolves game settings from defaults, an optional .env file,
// the environment and command-line flags, in increasing order of precedence.
package config

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"pacman/internal/sim"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	envPrefix     = "PACMAN_"
	configDirName = "pacman"
)

type PlayerStyle string

const (
	StyleCircle PlayerStyle = "circle"
	StyleWedge  PlayerStyle = "wedge"
)

type Config struct {
	GridSize      int
	CellSize      float64
	Speed         float64
	MouthSpeed    float64
	MaxMouthAngle float64
	PlayerStyle   PlayerStyle
	EnableAudio   bool
	SoundsDir     string
	// ConfigDir holds persisted records. Empty means the user config dir.
	ConfigDir string
	TPS       int
}

func Default() Config {
	return Config{
		GridSize:      20,
		CellSize:      30,
		Speed:         sim.DefaultSpeed,
		MouthSpeed:    sim.DefaultMouthSpeed,
		MaxMouthAngle: sim.DefaultMaxMouthAngle,
		PlayerStyle:   StyleWedge,
		SoundsDir:     "assets/sounds",
		TPS:           60,
	}
}

// Tuning converts the movement settings into simulation constants.
func (c Config) Tuning() sim.Tuning {
	t := sim.DefaultTuning()
	t.Speed = c.Speed
	t.MouthSpeed = c.MouthSpeed
	t.MaxMouthAngle = c.MaxMouthAngle
	return t
}

// Load reads envFile (ignored when missing), then the environment, then args.
func Load(envFile string, args []string) (Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadEnvFile applies envFile to the environment. A missing file, or a
// platform without a filesystem such as a browser, is not an error.
func loadEnvFile(envFile string) error {
	if envFile == "" || runtime.GOOS == "js" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !envFileAbsent(err) {
		return errors.Wrapf(err, "load %s", envFile)
	}
	return nil
}

func envFileAbsent(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOSYS)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	if v, ok := get("GRID_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, envPrefix+"GRID_SIZE")
		}
		c.GridSize = n
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"CELL_SIZE", &c.CellSize},
		{"SPEED", &c.Speed},
		{"MOUTH_SPEED", &c.MouthSpeed},
		{"MAX_MOUTH_ANGLE", &c.MaxMouthAngle},
	}
	for _, f := range floats {
		v, ok := get(f.key)
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, envPrefix+f.key)
		}
		*f.dst = n
	}
	if v, ok := get("PLAYER_STYLE"); ok {
		c.PlayerStyle = PlayerStyle(strings.ToLower(v))
	}
	if v, ok := get("ENABLE_AUDIO"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, envPrefix+"ENABLE_AUDIO")
		}
		c.EnableAudio = b
	}
	if v, ok := get("SOUNDS_DIR"); ok {
		c.SoundsDir = v
	}
	if v, ok := get("CONFIG_DIR"); ok {
		c.ConfigDir = v
	}
	if v, ok := get("TPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, envPrefix+"TPS")
		}
		c.TPS = n
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("pacman", flag.ContinueOnError)
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "grid size in cells")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "player speed in pixels per tick")
	style := fs.String("style", string(c.PlayerStyle), "player style: circle or wedge")
	fs.BoolVar(&c.EnableAudio, "audio", c.EnableAudio, "enable sound effects")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	c.PlayerStyle = PlayerStyle(strings.ToLower(*style))
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.GridSize < 3:
		return errors.Errorf("grid size %d: must be at least 3", c.GridSize)
	case c.CellSize <= 0:
		return errors.Errorf("cell size %v: must be positive", c.CellSize)
	case c.Speed <= 0:
		return errors.Errorf("speed %v: must be positive", c.Speed)
	case c.MouthSpeed <= 0:
		return errors.Errorf("mouth speed %v: must be positive", c.MouthSpeed)
	case c.MaxMouthAngle <= 0 || c.MaxMouthAngle >= math.Pi:
		return errors.Errorf("max mouth angle %v: must be in (0, pi)", c.MaxMouthAngle)
	case c.TPS <= 0:
		return errors.Errorf("tps %d: must be positive", c.TPS)
	}
	if c.PlayerStyle != StyleCircle && c.PlayerStyle != StyleWedge {
		return errors.Errorf("player style %q: want %q or %q", c.PlayerStyle, StyleCircle, StyleWedge)
	}
	return nil
}

// RecordsDir returns the directory for persisted records, creating it.
func (c Config) RecordsDir() (string, error) {
	dir := c.ConfigDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", errors.Wrap(err, "user config dir")
		}
		dir = filepath.Join(base, configDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	return dir, nil
}
