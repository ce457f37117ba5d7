package port

import (
	"context"

	"qc-scanner/internal/domain/entity"
)

// RecordRepository интерфейс хранилища результатов проверок
type RecordRepository interface {
	// Append добавляет запись в начало списка
	Append(ctx context.Context, rec entity.InspectionRecord) error

	// Clear удаляет все записи
	Clear(ctx context.Context) error

	// List возвращает записи от новых к старым, прошедшие фильтр
	List(ctx context.Context, filter entity.RecordFilter) ([]entity.InspectionRecord, error)

	// Counts пересчитывает агрегаты по статусам
	Counts(ctx context.Context) (entity.StatusCounts, error)
}
