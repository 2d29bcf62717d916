package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcraft/internal/platform"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	for _, p := range platform.All() {
		assert.GreaterOrEqual(t, Default().Prediction.Baseline(p).Baseline, 10)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "postcraft.yaml")
	cfg := Default()
	cfg.Recommend.MaxSuggestions = 4
	cfg.Server.ReadTimeout = Duration(3 * time.Second)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Recommend.MaxSuggestions)
	assert.Equal(t, 3*time.Second, got.Server.ReadTimeout.Std())
	assert.Equal(t, cfg.Prediction.Weights, got.Prediction.Weights)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prediction:\n  weights:\n    hook: 7\n"), 0o644))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Prediction.Weights.Hook)
	assert.Equal(t, ":8080", got.Server.Addr)
	assert.Equal(t, 10, got.Recommend.MaxSuggestions)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prediction:\n  reach:\n    twitter:\n      baseline: 3\n      engagementRate: 0.1\n"), 0o644))
	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrInvalid))

	cfg := Default()
	cfg.Prediction.Weights.Media = -1
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))

	cfg = Default()
	cfg.Prediction.Reach["myspace"] = ReachBaseline{Baseline: 100, EngagementRate: 0.1}
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))
}

func TestReachRejectsPlatformAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alias.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prediction:\n  reach:\n    x:\n      baseline: 50\n      engagementRate: 0.2\n"), 0o644))
	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrInvalid))

	cfg := Default()
	cfg.Prediction.Reach["Twitter"] = ReachBaseline{Baseline: 50, EngagementRate: 0.2}
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))

	cfg = Default()
	cfg.Prediction.Reach["twitter"] = ReachBaseline{Baseline: 50, EngagementRate: 0.2}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.Prediction.Baseline(platform.Twitter).Baseline)
}

func TestBadDurationFailsToLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  readTimeout: soon\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveEnv(t *testing.T) {
	t.Setenv("POSTCRAFT_ADDR", ":9999")
	t.Setenv("METRICS_ADDR", ":9100")
	t.Setenv("LOG_LEVEL", "debug")
	cfg := Default()
	cfg.ResolveEnv()
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestSaveEmptyPath(t *testing.T) {
	assert.Error(t, Save("", Default()))
}
