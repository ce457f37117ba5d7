package container

import (
	"log"
	"time"

	app "qc-scanner/internal/application"
	"qc-scanner/internal/domain/port"
)

type Container struct {
	UserService   *app.UserService
	RecordService *app.RecordService
	Scanner       *app.Scanner
	AutoScanner   *app.AutoScanner
}

// Options параметры сборки сервисов.
type Options struct {
	Scanner      app.ScannerOptions
	PollInterval time.Duration
	Logger       *log.Logger
}

func New(userRepo port.UserRepository, records port.RecordRepository, source port.FrameSource, opts Options) *Container {
	userService := app.NewUserService(userRepo)
	recordService := app.NewRecordService(records)
	scanner := app.NewScanner(records, source, opts.Scanner)

	return &Container{
		UserService:   userService,
		RecordService: recordService,
		Scanner:       scanner,
		AutoScanner:   app.NewAutoScanner(scanner, opts.PollInterval, opts.Logger),
	}
}
