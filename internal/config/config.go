package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure so callers can exit before the loop starts.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment override, e.g. MOUSE_KEEPALIVE_INTERVAL.
const EnvPrefix = "MOUSE_KEEPALIVE"

type Config struct {
	Loop struct {
		Interval int // seconds
		Duration int // seconds, 0 runs until interrupted
	}
	Output struct {
		Format  string
		Verbose bool
	}
	Hotkey struct {
		Stop string
	}
}

func NewConfig() *Config {
	c := &Config{}
	c.Loop.Interval = 60
	c.Loop.Duration = 0
	c.Output.Format = "text"
	c.Output.Verbose = false
	c.Hotkey.Stop = ""
	return c
}

// RegisterFlags defines the command-line flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	d := NewConfig()
	fs.IntP("interval", "i", d.Loop.Interval, "mouse movement interval in seconds / 鼠标移动间隔（秒）")
	fs.IntP("duration", "d", d.Loop.Duration, "run time in seconds, unlimited when omitted / 运行时长（秒），默认无限运行")
	fs.BoolP("verbose", "v", d.Output.Verbose, "show cursor position on every move / 显示详细日志")
	fs.String("format", d.Output.Format, "output format: text or json")
	fs.String("stop-hotkey", d.Hotkey.Stop, "global key combination that stops the run, e.g. ctrl+shift+q")
}

// Load resolves configuration from flags > env > defaults. There is no config file.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	d := NewConfig()

	// duration has no default on purpose: IsSet must only see explicit values.
	v.SetDefault("interval", d.Loop.Interval)
	v.SetDefault("verbose", d.Output.Verbose)
	v.SetDefault("format", d.Output.Format)
	v.SetDefault("stop-hotkey", d.Hotkey.Stop)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	cfg := NewConfig()

	interval, err := cast.ToIntE(v.Get("interval"))
	if err != nil {
		return nil, fmt.Errorf("%w: interval: %v", ErrInvalid, err)
	}
	cfg.Loop.Interval = interval

	if v.IsSet("duration") {
		duration, err := cast.ToIntE(v.Get("duration"))
		if err != nil {
			return nil, fmt.Errorf("%w: duration: %v", ErrInvalid, err)
		}
		if duration < 1 {
			return nil, fmt.Errorf("%w: duration must be greater than 0, got %d", ErrInvalid, duration)
		}
		cfg.Loop.Duration = duration
	}

	verbose, err := cast.ToBoolE(v.Get("verbose"))
	if err != nil {
		return nil, fmt.Errorf("%w: verbose: %v", ErrInvalid, err)
	}
	cfg.Output.Verbose = verbose
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(v.GetString("format")))
	cfg.Hotkey.Stop = strings.TrimSpace(v.GetString("stop-hotkey"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges the keepalive loop relies on.
func (c *Config) Validate() error {
	if c.Loop.Interval < 1 {
		return fmt.Errorf("%w: interval must be greater than 0, got %d", ErrInvalid, c.Loop.Interval)
	}
	if c.Loop.Duration < 0 {
		return fmt.Errorf("%w: duration must be greater than 0, got %d", ErrInvalid, c.Loop.Duration)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalid, c.Output.Format)
	}
	return nil
}

func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Loop.Interval) * time.Second
}

// RunDuration is zero when the run is unbounded.
func (c *Config) RunDuration() time.Duration {
	return time.Duration(c.Loop.Duration) * time.Second
}
