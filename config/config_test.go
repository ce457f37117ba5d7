package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"TELEGRAM_TOKEN", "SCANNER_MODEL_LABEL", "SCANNER_AUTO_SCAN", "SCANNER_SEED",
		"SCANNER_COOLDOWN", "SCANNER_POLL_INTERVAL", "CAMERA_DEVICE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Gaming Mouse X1", cfg.ModelLabel)
	require.True(t, cfg.AutoScan)
	require.True(t, cfg.Seed)
	require.Equal(t, 5*time.Second, cfg.Cooldown)
	require.Equal(t, 200*time.Millisecond, cfg.PollInterval)
	require.Equal(t, -1, cfg.CameraDevice)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("SCANNER_MODEL_LABEL", "Wireless Mouse W3")
	t.Setenv("SCANNER_AUTO_SCAN", "false")
	t.Setenv("SCANNER_COOLDOWN", "2s")
	t.Setenv("CAMERA_DEVICE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "Wireless Mouse W3", cfg.ModelLabel)
	require.False(t, cfg.AutoScan)
	require.Equal(t, 2*time.Second, cfg.Cooldown)
	require.Equal(t, 0, cfg.CameraDevice)
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"SCANNER_AUTO_SCAN":     "maybe",
		"SCANNER_COOLDOWN":      "five",
		"SCANNER_POLL_INTERVAL": "-1s",
		"CAMERA_DEVICE":         "front",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}
