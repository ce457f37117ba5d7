package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string

	ModelLabel   string
	AutoScan     bool
	Cooldown     time.Duration
	PollInterval time.Duration
	Seed         bool

	// CameraDevice номер веб-камеры, -1 — без камеры
	CameraDevice int
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		ModelLabel:    getenvDefault("SCANNER_MODEL_LABEL", "Gaming Mouse X1"),
	}

	var err error
	if cfg.AutoScan, err = getenvBool("SCANNER_AUTO_SCAN", true); err != nil {
		return nil, err
	}
	if cfg.Seed, err = getenvBool("SCANNER_SEED", true); err != nil {
		return nil, err
	}
	if cfg.Cooldown, err = getenvDuration("SCANNER_COOLDOWN", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = getenvDuration("SCANNER_POLL_INTERVAL", 200*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.CameraDevice, err = getenvInt("CAMERA_DEVICE", -1); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, v)
	}
	return d, nil
}
