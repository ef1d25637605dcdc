package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/jask/popoutview/core"
)

// Config holds application configuration.
type Config struct {
	Animation AnimationConfig
	Gesture   GestureConfig
	Layout    LayoutConfig
	Keys      map[string][]string
	UI        UIConfig
	Log       LogConfig
}

// AnimationConfig holds transition timing.
type AnimationConfig struct {
	Duration time.Duration
	FPS      int
}

// GestureConfig holds drag-to-dismiss tunables.
type GestureConfig struct {
	Damping         float64
	VelocityDivisor float64 `mapstructure:"velocity_divisor"`
	CommitRatio     float64 `mapstructure:"commit_ratio"`
}

// LayoutConfig holds expanded card layout.
type LayoutConfig struct {
	Margin int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Feedback string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// Path returns the config file path: explicit, then POPOUT_CONFIG, then
// $HOME/.config/popoutview/config.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("POPOUT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "popoutview", "config.toml")
}

func setDefaults(v *viper.Viper) {
	d := core.DefaultTuning()
	v.SetDefault("animation.duration", d.Duration)
	v.SetDefault("animation.fps", 60)
	v.SetDefault("gesture.damping", d.Damping)
	v.SetDefault("gesture.velocity_divisor", d.VelocityDivisor)
	v.SetDefault("gesture.commit_ratio", d.CommitRatio)
	v.SetDefault("layout.margin", int(d.Margin))
	v.SetDefault("ui.feedback", "bell")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads configuration from file and env. Env var overrides use prefix POPOUT_.
// A missing config file is not an error.
func Load(explicit string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Path(explicit))

	v.SetEnvPrefix("POPOUT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the configuration with no file or env applied.
func Default() Config {
	d := core.DefaultTuning()
	return Config{
		Animation: AnimationConfig{Duration: d.Duration, FPS: 60},
		Gesture:   GestureConfig{Damping: d.Damping, VelocityDivisor: d.VelocityDivisor, CommitRatio: d.CommitRatio},
		Layout:    LayoutConfig{Margin: int(d.Margin)},
		UI:        UIConfig{Feedback: "bell"},
		Log:       LogConfig{Level: "info"},
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Animation.Duration < 0 {
		errs = append(errs, fmt.Errorf("animation.duration must not be negative, got %s", c.Animation.Duration))
	}
	if c.Animation.FPS <= 0 {
		errs = append(errs, fmt.Errorf("animation.fps must be positive, got %d", c.Animation.FPS))
	}
	if c.Gesture.CommitRatio <= 0 {
		errs = append(errs, fmt.Errorf("gesture.commit_ratio must be positive, got %g", c.Gesture.CommitRatio))
	}
	if c.Gesture.VelocityDivisor < 0 {
		errs = append(errs, fmt.Errorf("gesture.velocity_divisor must not be negative, got %g", c.Gesture.VelocityDivisor))
	}
	if c.Layout.Margin < 0 {
		errs = append(errs, fmt.Errorf("layout.margin must not be negative, got %d", c.Layout.Margin))
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.Feedback)) {
	case "bell", "none", "":
	default:
		errs = append(errs, fmt.Errorf("ui.feedback must be bell or none, got %q", c.UI.Feedback))
	}
	known := core.Actions(core.DefaultKeyBindings())
	actions := make([]string, 0, len(c.Keys))
	for action := range c.Keys {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		if slices.Contains(known, action) {
			continue
		}
		if hint := suggest(action, known); hint != "" {
			errs = append(errs, fmt.Errorf("keys.%s: unknown action, did you mean %q?", action, hint))
		} else {
			errs = append(errs, fmt.Errorf("keys.%s: unknown action", action))
		}
	}
	return errors.Join(errs...)
}

// suggest returns the closest known name within a small edit distance.
func suggest(name string, known []string) string {
	best := ""
	bestDist := 3
	for _, k := range known {
		if d := levenshtein.ComputeDistance(name, k); d < bestDist {
			best = k
			bestDist = d
		}
	}
	return best
}

// Tuning converts the config into transition constants.
func (c Config) Tuning() core.Tuning {
	t := core.DefaultTuning()
	t.Duration = c.Animation.Duration
	if c.Animation.FPS > 0 {
		t.FrameInterval = time.Second / time.Duration(c.Animation.FPS)
	}
	t.Damping = c.Gesture.Damping
	t.VelocityDivisor = c.Gesture.VelocityDivisor
	t.CommitRatio = c.Gesture.CommitRatio
	t.Margin = float64(c.Layout.Margin)
	return t
}

// KeyBindings applies the configured key overrides to the defaults.
func (c Config) KeyBindings() []core.KeyBinding {
	return core.ApplyActionKeybindings(core.DefaultKeyBindings(), c.Keys)
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("animation.duration", cfg.Animation.Duration.String())
	v.Set("animation.fps", cfg.Animation.FPS)
	v.Set("gesture.damping", cfg.Gesture.Damping)
	v.Set("gesture.velocity_divisor", cfg.Gesture.VelocityDivisor)
	v.Set("gesture.commit_ratio", cfg.Gesture.CommitRatio)
	v.Set("layout.margin", cfg.Layout.Margin)
	v.Set("ui.feedback", cfg.UI.Feedback)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
