package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcraft/internal/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestAdaptTextOutput(t *testing.T) {
	out, err := execute(t, "adapt", "-p", "twitter", "--caption", strings.Repeat("a", 300), "--hashtags", "a,b,c,d,e,f,g")
	require.NoError(t, err)
	assert.Contains(t, out, "280/280 chars")
	assert.Contains(t, out, "(truncated)")
	assert.Contains(t, out, "#a #b #c #d #e")
	assert.NotContains(t, out, "#f")
}

func TestAdaptAllJSON(t *testing.T) {
	out, err := execute(t, "--json", "adapt", "--all", "--caption", "Hello world")
	require.NoError(t, err)
	var got struct {
		Renderings []model.PlatformRendering `json:"renderings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Renderings, 5)
}

func TestAdaptRequiresPlatform(t *testing.T) {
	_, err := execute(t, "adapt", "--caption", "hi")
	require.Error(t, err)
}

func TestPreflightBlockedExitCode(t *testing.T) {
	out, err := execute(t, "preflight", "-p", "x", "--caption", "")
	require.Error(t, err)
	var exit *ExitError
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 2, exit.Code)
	assert.Contains(t, out, "Blocked")
}

func TestPreflightPassesWithDraftFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.yaml")
	caption := strings.Repeat("Good coffee makes mornings. ", 5) + "Try it"
	body := "caption: \"" + caption + "\"\nhashtags: [coffee, morning, brew, latte, espresso, cafe, beans, roast]\nimageUrl: https://cdn.example/a.jpg\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	out, err := execute(t, "preflight", "-p", "instagram", "--draft", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Ready to publish")
}

func TestInlineFlagsOverrideDraftFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"caption":"from file","hashtags":["one"]}`), 0o644))
	out, err := execute(t, "--json", "adapt", "-p", "facebook", "--draft", path, "--caption", "from flag")
	require.NoError(t, err)
	var r model.PlatformRendering
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "from flag", r.Content)
	assert.Equal(t, []string{"one"}, r.Hashtags)
}

func TestPredictJSONUsesNow(t *testing.T) {
	out, err := execute(t, "--json", "--now", "2025-01-06T10:30:00Z", "predict", "-p", "linkedin", "--caption", "Ever wondered why? Comment below")
	require.NoError(t, err)
	var p model.EngagementPrediction
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.True(t, p.BestTimeToPost.After(time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC)))
	assert.GreaterOrEqual(t, p.Score, 0)
	assert.LessOrEqual(t, p.Score, 100)
}

func TestBadNowFlag(t *testing.T) {
	_, err := execute(t, "--now", "yesterday", "predict", "-p", "twitter", "--caption", "hi")
	require.Error(t, err)
}

func TestScheduleCount(t *testing.T) {
	out, err := execute(t, "--json", "--now", "2025-01-06T10:30:00Z", "schedule", "-p", "tiktok", "-n", "4")
	require.NoError(t, err)
	var got struct {
		Next     time.Time   `json:"next"`
		Upcoming []time.Time `json:"upcoming"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Upcoming, 4)
	assert.Equal(t, got.Next, got.Upcoming[0])
	for i := 1; i < len(got.Upcoming); i++ {
		assert.True(t, got.Upcoming[i].After(got.Upcoming[i-1]))
	}
}

func TestScheduleAllHeatmap(t *testing.T) {
	out, err := execute(t, "--now", "2025-01-06T10:30:00Z", "schedule", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Shared weekly slots")
	assert.Contains(t, out, "TikTok")
}

func TestHashtagsExcludeExisting(t *testing.T) {
	out, err := execute(t, "--json", "hashtags", "-p", "twitter", "--caption", "new AI productivity tool", "--existing", "ai")
	require.NoError(t, err)
	var tags []string
	require.NoError(t, json.Unmarshal([]byte(out), &tags))
	assert.NotContains(t, tags, "ai")
	assert.LessOrEqual(t, len(tags), 5)
}

func TestInitWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "postcraft.yaml")
	out, err := execute(t, "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to:")
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "postcraft "+Version+"\n", out)
}

func TestServeAllStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	done := make(chan error, 1)
	go func() { done <- serveAll(ctx, []*http.Server{srv}) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serveAll did not return after cancel")
	}
}
