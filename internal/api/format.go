package telegram

import (
	"fmt"
	"strings"

	"qc-scanner/internal/domain/entity"
)

func statusIcon(s entity.Status) string {
	switch s {
	case entity.StatusApproved:
		return "✅"
	case entity.StatusRejected:
		return "❌"
	default:
		return "⏳"
	}
}

func statusTitle(s entity.Status) string {
	switch s {
	case entity.StatusApproved:
		return "Изделие принято"
	case entity.StatusRejected:
		return "Изделие забраковано"
	default:
		return "Ожидает проверки"
	}
}

// formatRecord описание результата одной проверки.
func formatRecord(rec entity.InspectionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", statusIcon(rec.Status), statusTitle(rec.Status))
	fmt.Fprintf(&b, "Модель: %s\n", rec.ModelLabel)
	fmt.Fprintf(&b, "Уверенность: %.1f%%\n", rec.Confidence*100)
	if rec.CertificationPresent {
		b.WriteString("Сертификация: есть\n")
	} else {
		b.WriteString("Сертификация: нет\n")
	}
	if len(rec.Defects) > 0 {
		b.WriteString("\nОбнаружены проблемы:\n")
		for _, d := range rec.Defects {
			fmt.Fprintf(&b, "• %s\n", d)
		}
	}
	fmt.Fprintf(&b, "\nID: %s", rec.ID)
	return b.String()
}

// formatList краткий список записей, по одной на строку.
func formatList(records []entity.InspectionRecord, total int) string {
	if len(records) == 0 {
		return msgEmptyList
	}
	var b strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&b, "%s %s · %.1f%% · %s · %s\n",
			statusIcon(rec.Status), rec.ModelLabel, rec.Confidence*100,
			rec.Timestamp.Format("02.01 15:04"), rec.ID)
	}
	if total > len(records) {
		fmt.Fprintf(&b, "\n…и ещё %d", total-len(records))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatStats(c entity.StatusCounts) string {
	return fmt.Sprintf("📊 Всего проверок: %d\n✅ Принято: %d\n❌ Брак: %d\n⏳ Ожидает: %d\nСредняя уверенность: %.1f%%",
		c.Total, c.Approved, c.Rejected, c.Pending, c.AvgConfidence*100)
}

// parseListArgs разбирает аргументы /list: необязательный статус, затем строка поиска.
// Слово, не являющееся статусом, считается частью поиска.
func parseListArgs(args string) entity.RecordFilter {
	args = strings.TrimSpace(args)
	if args == "" {
		return entity.RecordFilter{}
	}
	first, rest, _ := strings.Cut(args, " ")
	if st, err := entity.ParseStatus(strings.ToLower(first)); err == nil {
		return entity.RecordFilter{Status: st, Search: strings.TrimSpace(rest)}
	}
	return entity.RecordFilter{Search: args}
}
