package entity

// ScanState состояние сканера
type ScanState string

const (
	ScanIdle        ScanState = "idle"         // Ожидание триггера
	ScanCapturing   ScanState = "capturing"    // Снимаем кадр
	ScanClassifying ScanState = "classifying"  // Определяем результат
	ScanResultShown ScanState = "result_shown" // Результат показан, ждём сброса
)

// InFlight сообщает, что скан уже выполняется.
func (s ScanState) InFlight() bool {
	return s == ScanCapturing || s == ScanClassifying
}

// Trigger источник запуска скана
type Trigger string

const (
	TriggerManual Trigger = "manual"
	TriggerAuto   Trigger = "auto"
)
