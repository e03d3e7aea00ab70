package oven

import (
	"errors"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("oven: invalid config")

// Config holds the tunables of a World. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Camera     CameraConfig     `yaml:"camera"`
	Controller ControllerConfig `yaml:"controller"`
	Collision  CollisionConfig  `yaml:"collision"`
	Rail       *RailConfig      `yaml:"rail,omitempty"`

	// LogLevel is a zap level name for NewLogger.
	LogLevel string `yaml:"log_level"`
	// Debug enables per-frame collision statistics.
	Debug bool `yaml:"debug"`
}

// CameraConfig describes the projection.
type CameraConfig struct {
	// FOV is the vertical field of view in degrees.
	FOV          float64 `yaml:"fov"`
	Aspect       float64 `yaml:"aspect"`
	Near         float64 `yaml:"near"`
	Far          float64 `yaml:"far"`
	Orthographic bool    `yaml:"orthographic"`
	// Width and Height size the orthographic volume.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Eye    Vec3 `yaml:"eye"`
	Target Vec3 `yaml:"target"`
}

// ControllerConfig tunes the camera controllers.
type ControllerConfig struct {
	Sensitivity float64 `yaml:"sensitivity"`
	Speed       float64 `yaml:"speed"`
	// MaxPitch is in degrees; zero leaves pitch unclamped.
	MaxPitch float64 `yaml:"max_pitch"`
}

// CollisionConfig tunes the CollisionManager.
type CollisionConfig struct {
	WorldBounds       *AABB `yaml:"world_bounds,omitempty"`
	ParallelThreshold int   `yaml:"parallel_threshold"`
	Workers           int   `yaml:"workers"`
}

// RailConfig describes a camera rail.
type RailConfig struct {
	Points []BezierPoint `yaml:"points"`
	// Loop is one of "none", "loop" or "bounce".
	Loop  string  `yaml:"loop"`
	Speed float64 `yaml:"speed"`
}

// DefaultConfig returns the configuration used when nothing is loaded.
func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{
			FOV:    45,
			Aspect: 16.0 / 9.0,
			Near:   0.5,
			Far:    100,
			Target: Vec3Forward,
		},
		Controller: ControllerConfig{
			Sensitivity: 0.5,
			Speed:       5,
			MaxPitch:    89,
		},
		Collision: CollisionConfig{
			ParallelThreshold: defaultParallelThreshold,
		},
		LogLevel: "info",
	}
}

// LoadConfig parses YAML over DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadConfig(data)
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	cam := c.Camera
	switch {
	case cam.Near <= 0 && !cam.Orthographic:
		return fmt.Errorf("camera near %v must be positive: %w", cam.Near, ErrInvalidConfig)
	case cam.Near == cam.Far:
		return fmt.Errorf("camera near and far are both %v: %w", cam.Near, ErrInvalidConfig)
	case !cam.Orthographic && (cam.FOV <= 0 || cam.FOV >= 180):
		return fmt.Errorf("camera fov %v must be in (0, 180): %w", cam.FOV, ErrInvalidConfig)
	case !cam.Orthographic && cam.Aspect <= 0:
		return fmt.Errorf("camera aspect %v must be positive: %w", cam.Aspect, ErrInvalidConfig)
	case cam.Orthographic && cam.Width <= 0:
		return fmt.Errorf("camera width %v must be positive: %w", cam.Width, ErrInvalidConfig)
	}

	ctl := c.Controller
	if ctl.Speed < 0 || ctl.Sensitivity < 0 {
		return fmt.Errorf("controller speed and sensitivity must not be negative: %w", ErrInvalidConfig)
	}
	if ctl.MaxPitch < 0 || ctl.MaxPitch > 90 {
		return fmt.Errorf("controller max_pitch %v must be in [0, 90]: %w", ctl.MaxPitch, ErrInvalidConfig)
	}

	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
		}
	}

	col := c.Collision
	if col.Workers < 0 {
		return fmt.Errorf("collision workers %d must not be negative: %w", col.Workers, ErrInvalidConfig)
	}
	if b := col.WorldBounds; b != nil && b.IsEmpty() {
		return fmt.Errorf("collision world_bounds has size %v: %w", b.Size, ErrInvalidConfig)
	}

	if r := c.Rail; r != nil {
		if len(r.Points) < 2 {
			return fmt.Errorf("rail has %d points: %w", len(r.Points), ErrInvalidConfig)
		}
		if _, err := ParseLoopMode(r.Loop); err != nil {
			return err
		}
	}
	return nil
}

// ParseLoopMode converts a loop mode name. Empty means LoopNone.
func ParseLoopMode(s string) (LoopMode, error) {
	switch s {
	case "", "none":
		return LoopNone, nil
	case "loop":
		return LoopRepeat, nil
	case "bounce":
		return LoopBounce, nil
	}
	return LoopNone, fmt.Errorf("unknown loop mode %q: %w", s, ErrInvalidConfig)
}

// Projection builds the projection described by the camera section.
func (c CameraConfig) Projection() ProjectionMatrix {
	if c.Orthographic {
		return Orthographic(c.Near, c.Far, c.Width, c.Height)
	}
	return Perspective(c.FOV*math.Pi/180, c.Aspect, c.Near, c.Far)
}

// NewFPSController builds an FPSCamera from the config.
func (c Config) NewFPSController() *FPSCamera {
	f := NewFPSCamera(c.Camera.Projection(), c.Camera.Eye, c.Camera.Target, Vec3Up)
	f.Sensitivity = c.Controller.Sensitivity
	f.Speed = c.Controller.Speed
	f.MaxPitch = c.Controller.MaxPitch * math.Pi / 180
	return f
}

// NewRailController builds a RailCamera from the rail section. It returns
// an error when the config has no rail.
func (c Config) NewRailController() (*RailCamera, error) {
	if c.Rail == nil {
		return nil, fmt.Errorf("config has no rail: %w", ErrInvalidConfig)
	}
	mode, err := ParseLoopMode(c.Rail.Loop)
	if err != nil {
		return nil, err
	}
	path, err := NewBezierPath(c.Rail.Points, mode)
	if err != nil {
		return nil, err
	}
	speed := c.Rail.Speed
	if speed == 0 {
		speed = 1
	}
	return NewRailCamera(c.Camera.Projection(), path, speed), nil
}
