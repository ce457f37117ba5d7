package entity

import (
	"errors"
	"math"
	"time"
)

// Status итог проверки изделия
type Status string

const (
	StatusApproved Status = "approved" // Изделие принято
	StatusRejected Status = "rejected" // Изделие забраковано
	StatusPending  Status = "pending"  // Зарезервировано, симулятор его не выставляет
)

var (
	// ErrMalformedRecord возвращается хранилищем для записи без ID или с неизвестным статусом.
	ErrMalformedRecord = errors.New("malformed inspection record")
	// ErrUnknownStatus возвращается ParseStatus.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrCaptureUnavailable источник кадров сейчас не может дать снимок.
	ErrCaptureUnavailable = errors.New("capture unavailable")
)

// Valid сообщает, входит ли статус в перечисление.
func (s Status) Valid() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusPending:
		return true
	}
	return false
}

// ParseStatus разбирает статус из пользовательского ввода.
// Пустая строка и "all" означают отсутствие фильтра и дают пустой Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "", "all":
		return "", nil
	}
	st := Status(s)
	if !st.Valid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

// Frame — снимок с камеры. Для ядра это непрозрачный дескриптор изображения.
type Frame struct {
	Data        []byte // закодированный кадр (обычно JPEG)
	ContentType string // MIME-тип Data
	URL         string // внешняя ссылка, если кадр не хранится в памяти
}

// Empty сообщает, что кадр не содержит ни данных, ни ссылки.
func (f Frame) Empty() bool {
	return len(f.Data) == 0 && f.URL == ""
}

// InspectionRecord хранит итог одной проверки. После создания не меняется.
type InspectionRecord struct {
	ID                   string
	Timestamp            time.Time
	Status               Status
	Image                Frame
	ModelLabel           string
	CertificationPresent bool
	Defects              []string
	Confidence           float64 // в диапазоне [0,1]
}

// Validate проверяет, что запись можно положить в хранилище: непустой ID, известный
// статус, уверенность в [0,1], у принятой записи нет дефектов, у забракованной есть
// хотя бы один. Для pending набор дефектов не проверяется.
func (r InspectionRecord) Validate() error {
	if r.ID == "" || !r.Status.Valid() {
		return ErrMalformedRecord
	}
	if math.IsNaN(r.Confidence) || r.Confidence < 0 || r.Confidence > 1 {
		return ErrMalformedRecord
	}
	switch r.Status {
	case StatusApproved:
		if len(r.Defects) != 0 {
			return ErrMalformedRecord
		}
	case StatusRejected:
		if len(r.Defects) == 0 {
			return ErrMalformedRecord
		}
	}
	return nil
}

// Clone возвращает копию записи, не разделяющую срезы с оригиналом.
func (r InspectionRecord) Clone() InspectionRecord {
	out := r
	if r.Defects != nil {
		out.Defects = append([]string(nil), r.Defects...)
	}
	if r.Image.Data != nil {
		out.Image.Data = append([]byte(nil), r.Image.Data...)
	}
	return out
}
