package port

import (
	"context"

	"qc-scanner/internal/domain/entity"
)

// FrameSource источник кадров (камера, загруженное фото и т.п.)
type FrameSource interface {
	// Capture возвращает текущий кадр или entity.ErrCaptureUnavailable
	Capture(ctx context.Context) (entity.Frame, error)
}
