package camera

import (
	"context"
	"errors"

	"qc-scanner/internal/domain/entity"
	"qc-scanner/internal/domain/port"
)

// Chain опрашивает источники по порядку и возвращает первый кадр.
// Источник, ответивший ErrCaptureUnavailable, пропускается; любая другая ошибка прерывает опрос.
type Chain []port.FrameSource

// Capture возвращает кадр первого доступного источника.
func (c Chain) Capture(ctx context.Context) (entity.Frame, error) {
	for _, src := range c {
		if src == nil {
			continue
		}
		f, err := src.Capture(ctx)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, entity.ErrCaptureUnavailable) {
			return entity.Frame{}, err
		}
	}
	return entity.Frame{}, entity.ErrCaptureUnavailable
}

var _ port.FrameSource = Chain(nil)
