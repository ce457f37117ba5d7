//go:build !gocv
// +build !gocv

package camera

import (
	"context"
	"errors"

	"qc-scanner/internal/domain/entity"
)

// Device заглушка камеры для сборки без OpenCV.
type Device struct {
	MaxSide int
}

// OpenDevice возвращает ошибку, если сборка без тега gocv.
func OpenDevice(id int) (*Device, error) {
	_ = id
	return nil, errors.New("gocv build tag is not enabled")
}

// Capture всегда сообщает, что кадра нет.
func (d *Device) Capture(ctx context.Context) (entity.Frame, error) {
	_ = ctx
	return entity.Frame{}, entity.ErrCaptureUnavailable
}

// Close ничего не делает.
func (d *Device) Close() error {
	return nil
}
