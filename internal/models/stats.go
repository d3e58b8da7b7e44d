package models

import "time"

// DashboardStats сводная статистика для главного экрана
type DashboardStats struct {
	TotalStudents        int     `json:"totalStudents"`
	ActiveStudents       int     `json:"activeStudents"`
	NewStudentsThisMonth int     `json:"newStudentsThisMonth"`
	AverageAge           float64 `json:"averageAge"`
}

// PlaceholderStats значения, которые показывает dashboard, когда данные получить не удалось
var PlaceholderStats = DashboardStats{
	TotalStudents:        150,
	ActiveStudents:       142,
	NewStudentsThisMonth: 12,
	AverageAge:           16.5,
}

// PlaceholderRecent список последних учеников для dashboard без данных
var PlaceholderRecent = []Student{
	{
		ID:        "1",
		Name:      "John Doe",
		Email:     "john.doe@email.com",
		Grade:     Grade10,
		CreatedAt: NewTimestamp(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)),
	},
	{
		ID:        "2",
		Name:      "Jane Smith",
		Email:     "jane.smith@email.com",
		Grade:     Grade11,
		CreatedAt: NewTimestamp(time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)),
	},
}
