package app

import (
	"bytes"
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"qc-scanner/internal/domain/entity"
	"qc-scanner/internal/infrastructure/storage"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAutoScanner_CommitsAndStops(t *testing.T) {
	clock := newManualClock()
	repo := storage.NewMemoryRecordRepository()
	s := NewScanner(repo, staticFrame(), ScannerOptions{
		AutoScan: true,
		Random:   constRandom(0.9),
		Clock:    clock,
	})
	clock.Advance(DefaultCooldown)

	var logs syncBuffer
	a := NewAutoScanner(s, 5*time.Millisecond, log.New(&logs, "", 0))
	a.Start(context.Background())

	require.Eventually(t, func() bool {
		return s.View().State == entity.ScanResultShown
	}, time.Second, 5*time.Millisecond)

	a.Stop()
	require.Contains(t, logs.String(), "auto-scan:")

	// после Stop таймер больше не срабатывает
	clock.Advance(time.Hour)
	require.NoError(t, s.Reset())
	clock.Advance(time.Hour)
	time.Sleep(30 * time.Millisecond)

	list, err := repo.List(context.Background(), entity.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, entity.ScanIdle, s.View().State)
}

func TestAutoScanner_StopOnContextCancel(t *testing.T) {
	s := NewScanner(storage.NewMemoryRecordRepository(), staticFrame(), ScannerOptions{})
	a := NewAutoScanner(s, time.Millisecond, log.New(&syncBuffer{}, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	a.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		a.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestAutoScanner_StopWithoutStart(t *testing.T) {
	s := NewScanner(storage.NewMemoryRecordRepository(), nil, ScannerOptions{})
	a := NewAutoScanner(s, 0, nil)
	a.Stop()
	a.Stop()
}

func TestAutoScanner_IgnoresMissingFrames(t *testing.T) {
	clock := newManualClock()
	s := NewScanner(storage.NewMemoryRecordRepository(), nil, ScannerOptions{
		AutoScan: true,
		Random:   constRandom(0.9),
		Clock:    clock,
	})
	clock.Advance(DefaultCooldown)

	var logs syncBuffer
	a := NewAutoScanner(s, time.Millisecond, log.New(&logs, "", 0))
	a.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	a.Stop()

	require.NotContains(t, logs.String(), "auto-scan error")
	require.Equal(t, entity.ScanIdle, s.View().State)
}
