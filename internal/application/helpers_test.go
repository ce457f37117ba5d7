package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"qc-scanner/internal/domain/entity"
)

// seqRandom отдаёт заранее заданные значения по порядку.
type seqRandom struct {
	mu   sync.Mutex
	vals []float64
}

func draws(vals ...float64) *seqRandom {
	return &seqRandom{vals: vals}
}

func (r *seqRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.vals) == 0 {
		panic("seqRandom: draw sequence exhausted")
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

func (r *seqRandom) push(vals ...float64) {
	r.mu.Lock()
	r.vals = append(r.vals, vals...)
	r.mu.Unlock()
}

func (r *seqRandom) left() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vals)
}

type constRandom float64

func (c constRandom) Float64() float64 { return float64(c) }

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type frameFunc func(ctx context.Context) (entity.Frame, error)

func (f frameFunc) Capture(ctx context.Context) (entity.Frame, error) { return f(ctx) }

func staticFrame() frameFunc {
	return func(ctx context.Context) (entity.Frame, error) {
		return entity.Frame{Data: []byte("jpeg"), ContentType: "image/jpeg"}, nil
	}
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("scan-%d", n)
	}
}
