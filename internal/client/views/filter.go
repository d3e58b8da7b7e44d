package views

import (
	"strings"

	"github.com/iudanet/studentdesk/internal/models"
)

// FilterStudents оставляет учеников, у которых имя, email или класс содержат
// term без учета регистра. Пустой term возвращает всех.
// Входной срез не изменяется.
func FilterStudents(students []models.Student, term string) []models.Student {
	term = strings.ToLower(strings.TrimSpace(term))

	result := make([]models.Student, 0, len(students))
	for _, s := range students {
		if term == "" || matches(s, term) {
			result = append(result, s)
		}
	}
	return result
}

func matches(s models.Student, term string) bool {
	return strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(s.Email), term) ||
		strings.Contains(strings.ToLower(string(s.Grade)), term)
}

// RemoveStudent возвращает копию списка без записи с указанным id
func RemoveStudent(students []models.Student, id string) []models.Student {
	result := make([]models.Student, 0, len(students))
	for _, s := range students {
		if s.ID != id {
			result = append(result, s)
		}
	}
	return result
}
