package entity

import "strings"

// RecordFilter описывает выборку для дашборда.
type RecordFilter struct {
	Status Status // пустой — все статусы
	Search string // подстрока в ModelLabel или ID, без учёта регистра
}

// Match сообщает, проходит ли запись фильтр.
func (f RecordFilter) Match(r InspectionRecord) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(r.ModelLabel), term) ||
		strings.Contains(strings.ToLower(r.ID), term)
}

// StatusCounts агрегаты по текущему набору записей.
type StatusCounts struct {
	Approved      int
	Rejected      int
	Pending       int
	Total         int
	AvgConfidence float64
}

// CountRecords считает агрегаты по срезу записей.
func CountRecords(records []InspectionRecord) StatusCounts {
	var c StatusCounts
	var sum float64
	for _, r := range records {
		switch r.Status {
		case StatusApproved:
			c.Approved++
		case StatusRejected:
			c.Rejected++
		case StatusPending:
			c.Pending++
		}
		sum += r.Confidence
	}
	c.Total = len(records)
	if c.Total > 0 {
		c.AvgConfidence = sum / float64(c.Total)
	}
	return c
}
