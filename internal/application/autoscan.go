package app

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"qc-scanner/internal/domain/entity"
)

// DefaultPollInterval как часто автоскан проверяет, пора ли снимать.
const DefaultPollInterval = 200 * time.Millisecond

// AutoScanner периодически вызывает Scanner.AutoTick в фоновой горутине.
// После Stop ни одного вызова AutoTick больше не будет.
type AutoScanner struct {
	scanner  *Scanner
	interval time.Duration
	logger   *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutoScanner создаёт цикл автоскана, но не запускает его.
func NewAutoScanner(scanner *Scanner, interval time.Duration, logger *log.Logger) *AutoScanner {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &AutoScanner{
		scanner:  scanner,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает цикл. Повторный вызов без Stop ничего не делает.
func (a *AutoScanner) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		return
	}

	ctx, a.cancel = context.WithCancel(ctx)
	a.done = make(chan struct{})
	go a.loop(ctx, a.done)

	a.logger.Printf("auto-scan loop started (interval=%s)", a.interval)
}

// Stop останавливает цикл и ждёт его завершения.
func (a *AutoScanner) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	a.logger.Printf("auto-scan loop stopped")
}

func (a *AutoScanner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

func (a *AutoScanner) tick(ctx context.Context) {
	rec, err := a.scanner.AutoTick(ctx)
	if err != nil {
		if !errors.Is(err, entity.ErrCaptureUnavailable) && ctx.Err() == nil {
			a.logger.Printf("auto-scan error: %v", err)
		}
		return
	}
	if rec != nil {
		a.logger.Printf("auto-scan: %s %s (confidence %.2f)", rec.ID, rec.Status, rec.Confidence)
	}
}
