package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/service/monitor"
	"github.com/uswah23/smart-bike-map/internal/service/override"
)

// writeConfig saves a settings file pointing at addr.
func writeConfig(t *testing.T, addr string) string {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		ServerAddress: addr,
		Timeout:       time.Second,
	}))

	return cfgPath
}

// TestOverrideCommand_StopsAlert runs geofence-override against a live tracker.
// Not parallel: the command reconfigures the global logger.
func TestOverrideCommand_StopsAlert(t *testing.T) {
	s := startStack(t, reservePort(t))
	ctx := context.Background()

	s.tracker.HandleFix(ctx, fix(t, 1.85, 103.12))

	runCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	require.NoError(t, override.Run(runCtx, &override.Options{ConfigPath: writeConfig(t, s.addr)}))

	entity := s.tracker.State(ctx)
	require.True(t, entity.OverrideActive)
	require.NotNil(t, entity.OverriddenBy)
	require.NotEmpty(t, entity.OverriddenBy.Username)
	require.Eventually(t, func() bool { return s.buzzer.Stops() == 1 }, time.Second, 5*time.Millisecond)
}

// TestMonitorCommand_PollsAndReturnsOnCancel polls a live tracker and exits on cancel.
// Not parallel: the command reconfigures the global logger.
func TestMonitorCommand_PollsAndReturnsOnCancel(t *testing.T) {
	s := startStack(t, reservePort(t))

	// The address argument overrides the one in the file.
	options := &monitor.Options{
		ConfigPath:    writeConfig(t, "127.0.0.1:1"),
		ServerAddress: s.addr,
		PollInterval:  20 * time.Millisecond,
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- monitor.Run(runCtx, options)
	}()

	s.tracker.HandleFix(context.Background(), fix(t, 1.85, 103.12))
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
}
