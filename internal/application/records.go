package app

import (
	"context"

	"qc-scanner/internal/domain/entity"
	"qc-scanner/internal/domain/port"
)

// RecordService чтение и очистка журнала проверок для дашборда.
type RecordService struct {
	repo port.RecordRepository
}

func NewRecordService(repo port.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

// Recent возвращает не больше limit записей, прошедших фильтр, и сколько всего их подошло.
// limit <= 0 — без ограничения.
func (s *RecordService) Recent(ctx context.Context, filter entity.RecordFilter, limit int) ([]entity.InspectionRecord, int, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total := len(records)
	if limit > 0 && total > limit {
		records = records[:limit]
	}
	return records, total, nil
}

func (s *RecordService) Counts(ctx context.Context) (entity.StatusCounts, error) {
	return s.repo.Counts(ctx)
}

func (s *RecordService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
