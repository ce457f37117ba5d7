//go:build gocv
// +build gocv

package camera

import (
	"context"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"qc-scanner/internal/domain/entity"
)

// Device снимает кадры с веб-камеры через OpenCV.
type Device struct {
	MaxSide int

	mu  sync.Mutex
	id  int
	cap *gocv.VideoCapture
}

// OpenDevice открывает камеру по номеру устройства.
func OpenDevice(id int) (*Device, error) {
	vc, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", id, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("open camera %d: device is not available", id)
	}
	return &Device{MaxSide: 1280, id: id, cap: vc}, nil
}

// Capture читает текущий кадр и возвращает его в JPEG.
func (d *Device) Capture(ctx context.Context) (entity.Frame, error) {
	if err := ctx.Err(); err != nil {
		return entity.Frame{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	mat := gocv.NewMat()
	defer mat.Close()
	if ok := d.cap.Read(&mat); !ok || mat.Empty() {
		return entity.Frame{}, entity.ErrCaptureUnavailable
	}

	// Крупные кадры уменьшаем, чтобы не держать в памяти мегабайты на запись.
	if d.MaxSide > 0 && (mat.Cols() > d.MaxSide || mat.Rows() > d.MaxSide) {
		scale := float64(d.MaxSide) / float64(maxInt(mat.Cols(), mat.Rows()))
		newW := int(float64(mat.Cols()) * scale)
		newH := int(float64(mat.Rows()) * scale)
		resized := gocv.NewMat()
		defer resized.Close()
		gocv.Resize(mat, &resized, image.Pt(newW, newH), 0, 0, gocv.InterpolationArea)
		return encodeJPEG(resized)
	}

	return encodeJPEG(mat)
}

// Close освобождает камеру.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cap.Close()
}

func encodeJPEG(mat gocv.Mat) (entity.Frame, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, mat)
	if err != nil {
		return entity.Frame{}, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := append([]byte(nil), buf.GetBytes()...)
	return entity.Frame{Data: data, ContentType: "image/jpeg"}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
