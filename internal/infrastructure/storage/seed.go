package storage

import (
	"time"

	"qc-scanner/internal/domain/entity"
)

// SeedRecords возвращает демонстрационные записи для пустого дашборда: два принятых
// изделия и одно забракованное, от новых к старым.
//
// Забракованная запись "2" несёт два дефекта. Симулятор всегда ставит ровно один,
// но образец данных сохранён как есть; Validate требует лишь хотя бы один дефект у брака.
func SeedRecords(now time.Time) []entity.InspectionRecord {
	return []entity.InspectionRecord{
		{
			ID:                   "1",
			Timestamp:            now.Add(-60 * time.Minute),
			Status:               entity.StatusApproved,
			Image:                entity.Frame{URL: "https://images.pexels.com/photos/399160/pexels-photo-399160.jpeg"},
			ModelLabel:           "Gaming Mouse X1",
			CertificationPresent: true,
			Defects:              []string{},
			Confidence:           0.98,
		},
		{
			ID:                   "2",
			Timestamp:            now.Add(-120 * time.Minute),
			Status:               entity.StatusRejected,
			Image:                entity.Frame{URL: "https://images.pexels.com/photos/2115257/pexels-photo-2115257.jpeg"},
			ModelLabel:           "Gaming Mouse X1",
			CertificationPresent: true,
			Defects:              []string{"Scratched surface", "Button damage"},
			Confidence:           0.89,
		},
		{
			ID:                   "3",
			Timestamp:            now.Add(-180 * time.Minute),
			Status:               entity.StatusApproved,
			Image:                entity.Frame{URL: "https://images.pexels.com/photos/5412270/pexels-photo-5412270.jpeg"},
			ModelLabel:           "Wireless Mouse W3",
			CertificationPresent: true,
			Defects:              []string{},
			Confidence:           0.96,
		},
	}
}
