package database

import (
	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

// Attendance rows are produced by the attendance subsystem; the finance
// core reads them to drive payroll generation and statistics.

// MentorAttendanceTotals aggregates present hours per (mentor, level) for
// a period. Aggregates with zero hours are excluded.
func (s *Store) MentorAttendanceTotals(month, year int) ([]models.MentorHours, error) {
	query := `SELECT mentor_id, level, SUM(hours_taught)
			  FROM attendance
			  WHERE status = 'present'
			  AND EXTRACT(MONTH FROM date) = $1
			  AND EXTRACT(YEAR FROM date) = $2
			  GROUP BY mentor_id, level
			  HAVING SUM(hours_taught) > 0
			  ORDER BY mentor_id, level`

	rows, err := s.db.Query(query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []models.MentorHours{}
	for rows.Next() {
		var mh models.MentorHours
		if err := rows.Scan(&mh.MentorID, &mh.Level, &mh.Hours); err != nil {
			return nil, err
		}
		totals = append(totals, mh)
	}
	return totals, rows.Err()
}

// MentorHoursTaught returns the total present hours across all mentors for
// a period, used in recap statistics.
func (s *Store) MentorHoursTaught(month, year int) (int, error) {
	query := `SELECT COALESCE(SUM(hours_taught), 0)
			  FROM attendance
			  WHERE status = 'present'
			  AND EXTRACT(MONTH FROM date) = $1
			  AND EXTRACT(YEAR FROM date) = $2`

	var hours int
	err := s.db.QueryRow(query, month, year).Scan(&hours)
	return hours, err
}
