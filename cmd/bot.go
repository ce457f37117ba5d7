package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"qc-scanner/config"
	telegram "qc-scanner/internal/api"
	app "qc-scanner/internal/application"
	"qc-scanner/internal/container"
	"qc-scanner/internal/domain/entity"
	"qc-scanner/internal/infrastructure/camera"
	"qc-scanner/internal/infrastructure/storage"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot (scanner screen and dashboard)",
		Args:  cobra.NoArgs,
		RunE:  runBot,
	}
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelegramToken == "" {
		return errors.New("TELEGRAM_TOKEN is required")
	}

	logger := log.New(os.Stdout, "qc-scanner ", log.LstdFlags)

	// Хранилище проверок живёт только в памяти процесса
	var seed []entity.InspectionRecord
	if cfg.Seed {
		seed = storage.SeedRecords(time.Now())
	}
	records := storage.NewMemoryRecordRepository(seed...)

	// Фото из чата сканируются напрямую, источник кадров только камера
	source := camera.Chain{}
	if cfg.CameraDevice >= 0 {
		dev, err := camera.OpenDevice(cfg.CameraDevice)
		if err != nil {
			logger.Printf("camera %d unavailable, photo-only mode: %v", cfg.CameraDevice, err)
		} else {
			defer dev.Close()
			source = append(source, dev)
		}
	}

	appContainer := container.New(storage.NewMemoryUserRepository(), records, source, container.Options{
		Scanner: app.ScannerOptions{
			ModelLabel: cfg.ModelLabel,
			Cooldown:   cfg.Cooldown,
			AutoScan:   cfg.AutoScan,
		},
		PollInterval: cfg.PollInterval,
		Logger:       logger,
	})

	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appContainer.AutoScanner.Start(ctx)
	defer appContainer.AutoScanner.Stop()

	logger.Println("Bot is running...")
	return bot.Run(ctx)
}
