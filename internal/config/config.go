package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"postcraft/internal/platform"
)

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("invalid config")

// Config is the application's configuration model.
// It captures the service listener, observability and the tunable scoring model.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Logging    LoggingConfig    `yaml:"logging"`
	Prediction PredictionConfig `yaml:"prediction"`
	Recommend  RecommendConfig  `yaml:"recommend"`
}

type ServerConfig struct {
	// Listen address; env POSTCRAFT_ADDR overrides it
	Addr         string          `yaml:"addr"`
	ReadTimeout  Duration        `yaml:"readTimeout"`
	WriteTimeout Duration        `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type MetricsConfig struct {
	// Separate listener for /metrics; empty disables it. Env METRICS_ADDR
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// PredictionConfig holds the heuristic weights of the engagement model.
type PredictionConfig struct {
	Weights Weights                 `yaml:"weights"`
	Reach   map[string]ReachBaseline `yaml:"reach"` // keyed by platform name
}

// Weights are the score points each signal contributes.
type Weights struct {
	Base         float64 `yaml:"base"`
	CaptionFit   float64 `yaml:"captionFit"`
	HashtagFit   float64 `yaml:"hashtagFit"`
	Hook         float64 `yaml:"hook"` // per hook signal
	Emoji        float64 `yaml:"emoji"`
	CallToAction float64 `yaml:"callToAction"`
	Media        float64 `yaml:"media"`
	MissingMedia float64 `yaml:"missingMedia"` // subtracted on visual-first platforms
	OverLimit    float64 `yaml:"overLimit"`    // subtracted when a hard limit is exceeded
}

// ReachBaseline scales score into illustrative reach and engagement counts.
type ReachBaseline struct {
	Baseline       int     `yaml:"baseline"`
	EngagementRate float64 `yaml:"engagementRate"`
}

type RecommendConfig struct {
	MaxSuggestions int `yaml:"maxSuggestions"`
}

// Duration is a time.Duration that reads and writes as "5s" in YAML.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) { return time.Duration(d).String(), nil }

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	v, err := time.ParseDuration(strings.TrimSpace(n.Value))
	if err != nil {
		return fmt.Errorf("duration %q: %w", n.Value, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// DefaultWeights returns the stock scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Base:         20,
		CaptionFit:   25,
		HashtagFit:   15,
		Hook:         5,
		Emoji:        3,
		CallToAction: 10,
		Media:        10,
		MissingMedia: 10,
		OverLimit:    10,
	}
}

// DefaultReach returns the stock per-platform reach baselines.
func DefaultReach() map[string]ReachBaseline {
	return map[string]ReachBaseline{
		platform.Instagram.String(): {Baseline: 1000, EngagementRate: 0.045},
		platform.Twitter.String():   {Baseline: 800, EngagementRate: 0.02},
		platform.LinkedIn.String():  {Baseline: 500, EngagementRate: 0.035},
		platform.TikTok.String():    {Baseline: 2000, EngagementRate: 0.06},
		platform.Facebook.String():  {Baseline: 600, EngagementRate: 0.015},
	}
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration(5 * time.Second),
			WriteTimeout: Duration(10 * time.Second),
			RateLimit:    RateLimitConfig{RPS: 20, Burst: 40},
		},
		Metrics:    MetricsConfig{Addr: ""},
		Logging:    LoggingConfig{Level: "info"},
		Prediction: PredictionConfig{Weights: DefaultWeights(), Reach: DefaultReach()},
		Recommend:  RecommendConfig{MaxSuggestions: 10},
	}
}

// ResolveEnv applies environment overrides. METRICS_ADDR only fills an empty value.
func (c *Config) ResolveEnv() {
	if v := os.Getenv("POSTCRAFT_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Baseline returns the reach baseline for p, falling back to the default table.
func (c PredictionConfig) Baseline(p platform.Platform) ReachBaseline {
	if b, ok := c.Reach[p.String()]; ok {
		return b
	}
	return DefaultReach()[p.String()]
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	w := c.Prediction.Weights
	for name, v := range map[string]float64{
		"base": w.Base, "captionFit": w.CaptionFit, "hashtagFit": w.HashtagFit, "hook": w.Hook,
		"emoji": w.Emoji, "callToAction": w.CallToAction, "media": w.Media,
		"missingMedia": w.MissingMedia, "overLimit": w.OverLimit,
	} {
		if v < 0 {
			return fmt.Errorf("config: prediction.weights.%s is negative: %w", name, ErrInvalid)
		}
	}
	for name, b := range c.Prediction.Reach {
		p, err := platform.Parse(name)
		if err != nil {
			return fmt.Errorf("config: prediction.reach: %v: %w", err, ErrInvalid)
		}
		// Baseline looks entries up by canonical name only.
		if name != p.String() {
			return fmt.Errorf("config: prediction.reach.%s: use the platform name %q: %w", name, p.String(), ErrInvalid)
		}
		if b.Baseline < 10 {
			return fmt.Errorf("config: prediction.reach.%s.baseline must be >= 10: %w", name, ErrInvalid)
		}
		if b.EngagementRate <= 0 || b.EngagementRate > 1 {
			return fmt.Errorf("config: prediction.reach.%s.engagementRate must be in (0,1]: %w", name, ErrInvalid)
		}
	}
	if c.Recommend.MaxSuggestions < 1 {
		return fmt.Errorf("config: recommend.maxSuggestions must be >= 1: %w", ErrInvalid)
	}
	if c.Server.RateLimit.RPS <= 0 || c.Server.RateLimit.Burst <= 0 {
		return fmt.Errorf("config: server.rateLimit must be positive: %w", ErrInvalid)
	}
	return nil
}

// Load reads YAML config from path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.ResolveEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
