package models

// Student представляет запись об ученике в том виде, в котором ее отдает сервер.
// Клиент держит только копии для отображения, источник истины всегда backend.
type Student struct {
	CreatedAt Timestamp `json:"createdAt"` // CreatedAt время создания записи на сервере
	UpdatedAt Timestamp `json:"updatedAt"` // UpdatedAt время последнего обновления
	ID        string    `json:"id"`        // ID идентификатор записи на сервере
	Name      string    `json:"name"`      // Name полное имя ученика
	Email     string    `json:"email"`     // Email контактный email
	Grade     Grade     `json:"grade"`     // Grade класс обучения
	Phone     string    `json:"phone"`     // Phone номер телефона
	Address   string    `json:"address"`   // Address домашний адрес
	Age       int       `json:"age"`       // Age возраст, допустимо 5..25
}

const (
	// MinStudentAge минимальный допустимый возраст ученика
	MinStudentAge = 5
	// MaxStudentAge максимальный допустимый возраст ученика
	MaxStudentAge = 25
)

// Grade класс обучения ученика
type Grade string

const (
	GradeKindergarten Grade = "Kindergarten"
	Grade1            Grade = "1st Grade"
	Grade2            Grade = "2nd Grade"
	Grade3            Grade = "3rd Grade"
	Grade4            Grade = "4th Grade"
	Grade5            Grade = "5th Grade"
	Grade6            Grade = "6th Grade"
	Grade7            Grade = "7th Grade"
	Grade8            Grade = "8th Grade"
	Grade9            Grade = "9th Grade"
	Grade10           Grade = "10th Grade"
	Grade11           Grade = "11th Grade"
	Grade12           Grade = "12th Grade"
)

// Grades возвращает все допустимые классы в порядке обучения
func Grades() []Grade {
	return []Grade{
		GradeKindergarten,
		Grade1, Grade2, Grade3, Grade4, Grade5, Grade6,
		Grade7, Grade8, Grade9, Grade10, Grade11, Grade12,
	}
}

// Valid проверяет, что значение входит в список допустимых классов
func (g Grade) Valid() bool {
	for _, known := range Grades() {
		if g == known {
			return true
		}
	}
	return false
}

func (g Grade) String() string {
	return string(g)
}
