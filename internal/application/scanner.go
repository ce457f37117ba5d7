package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"qc-scanner/internal/domain/entity"
	"qc-scanner/internal/domain/port"
)

const (
	DefaultCooldown   = 5 * time.Second
	DefaultModelLabel = "Gaming Mouse X1"

	rejectThreshold        = 0.3 // outcomeRoll <= порога => брак
	presenceThreshold      = 0.7 // автоскан стартует только при draw > порога
	certificationThreshold = 0.1
)

var (
	// ErrScanInFlight триггер пришёл во время съёмки или классификации.
	ErrScanInFlight = errors.New("scan already in progress")
	// ErrResultShown предыдущий результат ещё не сброшен.
	ErrResultShown = errors.New("previous result is still shown")
)

// ScannerOptions настройки сканера. Нулевые значения заменяются значениями по умолчанию.
type ScannerOptions struct {
	ModelLabel string
	Cooldown   time.Duration
	AutoScan   bool
	Random     port.Random
	Clock      port.Clock
	NewID      func() string
}

// ScanView то, что показывает экран сканера.
type ScanView struct {
	State    entity.ScanState
	Result   *entity.InspectionRecord
	AutoScan bool
}

// Scanner имитирует проверку изделия: снимает кадр, случайно выбирает вердикт
// и сохраняет запись в хранилище. Одновременно выполняется не более одного скана.
type Scanner struct {
	records    port.RecordRepository
	source     port.FrameSource
	rnd        port.Random
	clock      port.Clock
	newID      func() string
	modelLabel string
	cooldown   time.Duration

	mu        sync.Mutex
	state     entity.ScanState
	result    *entity.InspectionRecord
	autoScan  bool
	lastScan  time.Time
	listeners []ResultListener
}

// ResultListener получает каждую сохранённую запись и источник триггера.
type ResultListener func(rec entity.InspectionRecord, trigger entity.Trigger)

// NewScanner создаёт сканер в состоянии idle. Отсчёт паузы автоскана начинается с момента создания.
func NewScanner(records port.RecordRepository, source port.FrameSource, opts ScannerOptions) *Scanner {
	if opts.ModelLabel == "" {
		opts.ModelLabel = DefaultModelLabel
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}
	if opts.Random == nil {
		opts.Random = globalRandom{}
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &Scanner{
		records:    records,
		source:     source,
		rnd:        opts.Random,
		clock:      opts.Clock,
		newID:      opts.NewID,
		modelLabel: opts.ModelLabel,
		cooldown:   opts.Cooldown,
		state:      entity.ScanIdle,
		autoScan:   opts.AutoScan,
		lastScan:   opts.Clock.Now(),
	}
}

// OnResult регистрирует обработчик, который вызывается после сохранения каждой записи.
// Обработчики вызываются вне блокировки сканера.
func (s *Scanner) OnResult(fn ResultListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// SetAutoScan включает или выключает автоматический скан.
func (s *Scanner) SetAutoScan(enabled bool) {
	s.mu.Lock()
	s.autoScan = enabled
	s.mu.Unlock()
}

// View возвращает текущее состояние экрана.
func (s *Scanner) View() ScanView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := ScanView{State: s.state, AutoScan: s.autoScan}
	if s.result != nil {
		r := s.result.Clone()
		v.Result = &r
	}
	return v
}

// TriggerManual запускает скан по запросу пользователя, без проверки наличия объекта в кадре.
func (s *Scanner) TriggerManual(ctx context.Context) (*entity.InspectionRecord, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	return s.run(ctx, entity.TriggerManual, s.capture)
}

// TriggerManualWith запускает ручной скан уже готового кадра (например, фото из чата).
// Источник кадров сканера не опрашивается, поэтому автоскан этот кадр забрать не может.
func (s *Scanner) TriggerManualWith(ctx context.Context, frame entity.Frame) (*entity.InspectionRecord, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	return s.run(ctx, entity.TriggerManual, func(context.Context) (entity.Frame, error) {
		if frame.Empty() {
			return entity.Frame{}, entity.ErrCaptureUnavailable
		}
		return frame, nil
	})
}

// AutoTick выполняет одну проверку таймера автоскана. Если автоскан выключен, показан
// результат, не прошла пауза или в кадре "нет объекта", возвращает (nil, nil).
func (s *Scanner) AutoTick(ctx context.Context) (*entity.InspectionRecord, error) {
	s.mu.Lock()
	if !s.autoScan || s.state != entity.ScanIdle || s.clock.Now().Sub(s.lastScan) < s.cooldown {
		s.mu.Unlock()
		return nil, nil
	}
	if s.rnd.Float64() <= presenceThreshold {
		s.mu.Unlock()
		return nil, nil
	}
	s.state = entity.ScanCapturing
	s.mu.Unlock()

	return s.run(ctx, entity.TriggerAuto, s.capture)
}

// begin переводит idle в capturing для ручного триггера.
func (s *Scanner) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.state.InFlight():
		return ErrScanInFlight
	case s.state == entity.ScanResultShown:
		return ErrResultShown
	}
	s.state = entity.ScanCapturing
	return nil
}

// Reset убирает показанный результат и перезапускает паузу автоскана.
func (s *Scanner) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.InFlight() {
		return ErrScanInFlight
	}
	s.state = entity.ScanIdle
	s.result = nil
	s.lastScan = s.clock.Now()
	return nil
}

// run снимает кадр без блокировки, остальное делает под ней.
func (s *Scanner) run(ctx context.Context, trigger entity.Trigger, capture func(context.Context) (entity.Frame, error)) (*entity.InspectionRecord, error) {
	frame, err := capture(ctx)

	s.mu.Lock()
	if err != nil {
		s.state = entity.ScanIdle
		s.mu.Unlock()
		return nil, err
	}

	s.state = entity.ScanClassifying
	rec := s.classify(frame)
	if err := s.records.Append(ctx, rec); err != nil {
		s.state = entity.ScanIdle
		s.mu.Unlock()
		return nil, fmt.Errorf("store record: %w", err)
	}

	shown := rec.Clone()
	s.result = &shown
	s.state = entity.ScanResultShown
	s.lastScan = rec.Timestamp
	listeners := append([]ResultListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(rec.Clone(), trigger)
	}
	return &rec, nil
}

func (s *Scanner) capture(ctx context.Context) (entity.Frame, error) {
	if s.source == nil {
		return entity.Frame{}, entity.ErrCaptureUnavailable
	}
	frame, err := s.source.Capture(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrCaptureUnavailable) {
			return entity.Frame{}, err
		}
		return entity.Frame{}, fmt.Errorf("capture frame: %w", err)
	}
	if frame.Empty() {
		return entity.Frame{}, entity.ErrCaptureUnavailable
	}
	return frame, nil
}

// classify тянет значения в фиксированном порядке: исход, уверенность,
// дефект (только для брака), сертификация.
func (s *Scanner) classify(frame entity.Frame) entity.InspectionRecord {
	rec := entity.InspectionRecord{
		ID:         s.newID(),
		Timestamp:  s.clock.Now(),
		Image:      frame,
		ModelLabel: s.modelLabel,
		Defects:    []string{},
	}

	outcome := s.rnd.Float64()
	if outcome > rejectThreshold {
		rec.Status = entity.StatusApproved
		rec.Confidence = 0.85 + 0.14*s.rnd.Float64()
	} else {
		rec.Status = entity.StatusRejected
		rec.Confidence = 0.5 + 0.3*s.rnd.Float64()
		rec.Defects = []string{entity.DefectAt(s.rnd.Float64())}
	}
	rec.CertificationPresent = s.rnd.Float64() > certificationThreshold

	return rec
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
