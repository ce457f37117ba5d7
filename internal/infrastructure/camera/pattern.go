package camera

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"sync"

	"qc-scanner/internal/domain/entity"
)

// Pattern генерирует синтетические кадры: градиент со сдвигом на каждый снимок.
// Нужен для запуска без камеры.
type Pattern struct {
	Width  int
	Height int

	mu    sync.Mutex
	frame int
}

// NewPattern создаёт генератор кадров заданного размера.
func NewPattern(width, height int) *Pattern {
	return &Pattern{Width: width, Height: height}
}

// Capture рисует очередной кадр и кодирует его в JPEG.
func (p *Pattern) Capture(ctx context.Context) (entity.Frame, error) {
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, err
	}
	if p.Width <= 0 || p.Height <= 0 {
		return entity.Frame{}, entity.ErrCaptureUnavailable
	}

	p.mu.Lock()
	shift := p.frame
	p.frame++
	p.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x + shift*8) % 256),
				G: uint8(y * 255 / p.Height),
				B: 96,
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return entity.Frame{}, fmt.Errorf("encode pattern: %w", err)
	}
	return entity.Frame{Data: buf.Bytes(), ContentType: "image/jpeg"}, nil
}
