package storage

import (
	"context"
	"sync"

	"qc-scanner/internal/domain/entity"
	"qc-scanner/internal/domain/port"
)

// MemoryRecordRepository in-memory хранилище результатов проверок.
// Записи лежат от новых к старым, наружу отдаются только копии.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records []entity.InspectionRecord
}

// NewMemoryRecordRepository создаёт хранилище с начальными записями (seed идут в порядке от новых к старым)
func NewMemoryRecordRepository(seed ...entity.InspectionRecord) *MemoryRecordRepository {
	records := make([]entity.InspectionRecord, 0, len(seed))
	for _, r := range seed {
		records = append(records, r.Clone())
	}
	return &MemoryRecordRepository{records: records}
}

// Append добавляет запись в начало
func (r *MemoryRecordRepository) Append(ctx context.Context, rec entity.InspectionRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec = rec.Clone()

	r.mu.Lock()
	r.records = append(r.records, entity.InspectionRecord{})
	copy(r.records[1:], r.records)
	r.records[0] = rec
	r.mu.Unlock()

	return nil
}

// Clear удаляет все записи
func (r *MemoryRecordRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()

	return nil
}

// List возвращает отфильтрованные записи от новых к старым
func (r *MemoryRecordRepository) List(ctx context.Context, filter entity.RecordFilter) ([]entity.InspectionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.InspectionRecord, 0, len(r.records))
	for _, rec := range r.records {
		if filter.Match(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// Counts пересчитывает агрегаты на каждый вызов
func (r *MemoryRecordRepository) Counts(ctx context.Context) (entity.StatusCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return entity.CountRecords(r.records), nil
}

// Проверка реализации интерфейса
var _ port.RecordRepository = (*MemoryRecordRepository)(nil)
