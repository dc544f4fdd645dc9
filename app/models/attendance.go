package models

import "time"

// Attendance is one mentor attendance record, owned by the attendance
// subsystem and read here to drive payroll generation.
type Attendance struct {
	ID          string           `json:"id"`
	MentorID    string           `json:"mentor_id"`
	Date        time.Time        `json:"date"`
	Level       string           `json:"level"`
	Status      AttendanceStatus `json:"status"`
	HoursTaught int              `json:"hours_taught"`
	CreatedAt   time.Time        `json:"created_at"`
}

// MentorHours is the per-(mentor, level) aggregate of present hours for a
// period, the input to payroll generation.
type MentorHours struct {
	MentorID string `json:"mentor_id"`
	Level    string `json:"level"`
	Hours    int    `json:"hours"`
}
