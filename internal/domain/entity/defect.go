package entity

// DefectCatalog фиксированный список дефектов, из которого выбирает симулятор.
var DefectCatalog = [...]string{
	"Scratched surface",
	"Button damage",
	"Missing certification mark",
	"Color inconsistency",
	"Structural damage",
}

// DefectAt возвращает дефект по доле d из [0,1).
// Значения вне диапазона прижимаются к краям каталога.
func DefectAt(d float64) string {
	i := int(d * float64(len(DefectCatalog)))
	if i < 0 {
		i = 0
	}
	if i >= len(DefectCatalog) {
		i = len(DefectCatalog) - 1
	}
	return DefectCatalog[i]
}

// IsCatalogDefect сообщает, есть ли метка в каталоге.
func IsCatalogDefect(label string) bool {
	for _, d := range DefectCatalog {
		if d == label {
			return true
		}
	}
	return false
}
