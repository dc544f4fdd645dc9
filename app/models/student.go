package models

import "time"

// Student represents one enrolled student in the tutoring program.
type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Level      string    `json:"level"`
	MonthlyFee int64     `json:"monthly_fee"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LevelCount is the number of active students in one teaching level.
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}
