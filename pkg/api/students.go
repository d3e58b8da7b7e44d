package api

import (
	"bytes"
	"encoding/json"

	"github.com/iudanet/studentdesk/internal/models"
)

// StudentPayload тело запроса на создание/обновление ученика (все поля кроме id)
type StudentPayload struct {
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Grade   models.Grade `json:"grade"`
	Phone   string       `json:"phone"`
	Address string       `json:"address"`
	Age     int          `json:"age"`
}

// StudentsResponse ответ со списком учеников (GET /students, GET /students/search)
type StudentsResponse struct {
	Students []models.Student `json:"students"`
}

// StudentResponse ответ с одним учеником (GET /students/:id)
type StudentResponse struct {
	Student models.Student `json:"student"`
}

// MutationResponse ответ сервера на create/update/delete/batch.
// Backend не фиксирует форму ответа, поэтому обе части опциональны.
type MutationResponse struct {
	Student  *models.Student  `json:"student,omitempty"`
	Students []models.Student `json:"students,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// UnmarshalJSON принимает как объект, так и голый массив учеников (ответ batch)
func (m *MutationResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []models.Student
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*m = MutationResponse{Students: list}
		return nil
	}

	// alias без методов, чтобы не уйти в рекурсию
	type alias MutationResponse
	var out alias
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return err
	}
	*m = MutationResponse(out)
	return nil
}

// PayloadFromStudent собирает тело запроса из существующей записи
func PayloadFromStudent(s models.Student) StudentPayload {
	return StudentPayload{
		Name:    s.Name,
		Email:   s.Email,
		Grade:   s.Grade,
		Phone:   s.Phone,
		Address: s.Address,
		Age:     s.Age,
	}
}
