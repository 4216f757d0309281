package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/lobber/parameter"
)

// EnvPrefix is prepended to every environment override, e.g. LOBBER_LAUNCH_POWERMAX
const EnvPrefix = "LOBBER"

var (
	ErrTickRate    = errors.New("tick rate must be positive")
	ErrPowerRange  = errors.New("power min must be below power max")
	ErrLaunchSpeed = errors.New("launch speed must not be negative")
	ErrSensitivity = errors.New("sensitivity must not be zero")
	ErrColorMode   = errors.New("unknown color mode")
)

// LaunchConfig tunes the charge controller and spawn velocity
type LaunchConfig struct {
	PowerMin float64 `json:"powerMin" mapstructure:"powerMin"`
	PowerMax float64 `json:"powerMax" mapstructure:"powerMax"`
	Speed    float64 `json:"speed" mapstructure:"speed"`
}

// PhysicsConfig holds fixed step settings
type PhysicsConfig struct {
	TickRate int     `json:"tickRate" mapstructure:"tickRate"`
	MaxSteps int     `json:"maxSteps" mapstructure:"maxSteps"`
	GravityY float64 `json:"gravityY" mapstructure:"gravityY"`
}

// PlayerConfig covers the viewpoint controls
type PlayerConfig struct {
	Speed       float64 `json:"speed" mapstructure:"speed"`
	Sensitivity float64 `json:"sensitivity" mapstructure:"sensitivity"`
	HoldFrames  int     `json:"holdFrames" mapstructure:"holdFrames"`
}

// SceneConfig controls landmark layout and projectile bookkeeping
type SceneConfig struct {
	Seed           uint64 `json:"seed" mapstructure:"seed"`
	MaxProjectiles int    `json:"maxProjectiles" mapstructure:"maxProjectiles"`
}

// Config is the resolved runtime configuration
type Config struct {
	Debug   bool   `json:"debug" mapstructure:"debug"`
	LogDir  string `json:"logDir" mapstructure:"logDir"`
	NoAudio bool   `json:"noAudio" mapstructure:"noAudio"`
	Color   string `json:"color" mapstructure:"color"`

	Launch  LaunchConfig  `json:"launch" mapstructure:"launch"`
	Physics PhysicsConfig `json:"physics" mapstructure:"physics"`
	Player  PlayerConfig  `json:"player" mapstructure:"player"`
	Scene   SceneConfig   `json:"scene" mapstructure:"scene"`

	// Keys maps action names to single-character keys, e.g. {"launch": "f"}
	Keys map[string]string `json:"keys" mapstructure:"keys"`
}

// flag name -> viper key
var flagKeys = map[string]string{
	"debug":           "debug",
	"log-dir":         "logDir",
	"no-audio":        "noAudio",
	"color":           "color",
	"tick-rate":       "physics.tickRate",
	"power-min":       "launch.powerMin",
	"power-max":       "launch.powerMax",
	"launch-speed":    "launch.speed",
	"sensitivity":     "player.sensitivity",
	"max-projectiles": "scene.maxProjectiles",
	"seed":            "scene.seed",
}

// Flags registers the command line surface on fs
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to config file (json, yaml or toml)")
	fs.Bool("debug", false, "write debug log to log directory")
	fs.String("log-dir", "logs", "log directory")
	fs.Bool("no-audio", false, "disable launch sound")
	fs.String("color", "auto", "color mode: auto, truecolor, 256")
	fs.Int("tick-rate", parameter.FixedTickRate, "physics steps per second")
	fs.Float64("power-min", parameter.PowerMin, "minimum launch power")
	fs.Float64("power-max", parameter.PowerMax, "maximum launch power")
	fs.Float64("launch-speed", parameter.LaunchSpeed, "velocity per unit of power")
	fs.Float64("sensitivity", parameter.MouseSensitivity, "base look sensitivity")
	fs.Int("max-projectiles", parameter.MaxProjectiles, "projectile cap, 0 for unlimited")
	fs.Uint64("seed", parameter.DefaultSeed, "palette seed")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("logDir", "logs")
	v.SetDefault("noAudio", false)
	v.SetDefault("color", "auto")

	v.SetDefault("launch.powerMin", parameter.PowerMin)
	v.SetDefault("launch.powerMax", parameter.PowerMax)
	v.SetDefault("launch.speed", parameter.LaunchSpeed)

	v.SetDefault("physics.tickRate", parameter.FixedTickRate)
	v.SetDefault("physics.maxSteps", parameter.MaxFixedStepsPerFrame)
	v.SetDefault("physics.gravityY", parameter.GravityY)

	v.SetDefault("player.speed", parameter.PlayerSpeed)
	v.SetDefault("player.sensitivity", parameter.MouseSensitivity)
	v.SetDefault("player.holdFrames", parameter.HoldFrames)

	v.SetDefault("scene.seed", uint64(parameter.DefaultSeed))
	v.SetDefault("scene.maxProjectiles", parameter.MaxProjectiles)
}

// Default returns the built-in configuration without consulting files, env or flags
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load resolves configuration from defaults, an optional file, LOBBER_* env and flags
// An explicit path must exist; without one, lobber.{json,yaml,toml} in the working directory is optional
func Load(fs *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("lobber")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	return decode(v)
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("%w: %d", ErrTickRate, c.Physics.TickRate)
	}
	if c.Physics.MaxSteps <= 0 {
		c.Physics.MaxSteps = parameter.MaxFixedStepsPerFrame
	}
	if c.Launch.PowerMin >= c.Launch.PowerMax {
		return fmt.Errorf("%w: %v >= %v", ErrPowerRange, c.Launch.PowerMin, c.Launch.PowerMax)
	}
	if c.Launch.Speed < 0 {
		return fmt.Errorf("%w: %v", ErrLaunchSpeed, c.Launch.Speed)
	}
	if c.Player.Sensitivity == 0 {
		return ErrSensitivity
	}
	if c.Player.HoldFrames <= 0 {
		c.Player.HoldFrames = parameter.HoldFrames
	}
	if c.Scene.MaxProjectiles < 0 {
		c.Scene.MaxProjectiles = 0
	}
	switch strings.ToLower(c.Color) {
	case "auto", "truecolor", "256", "":
	default:
		return fmt.Errorf("%w: %q", ErrColorMode, c.Color)
	}
	return nil
}
