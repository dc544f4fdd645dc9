package database

import (
	"database/sql"

	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

// The student and mentor rosters are owned by the admin subsystem; the
// finance core only reads them.

// ActiveStudents returns active students, optionally filtered by level,
// ordered by name.
func (s *Store) ActiveStudents(level string) ([]*models.Student, error) {
	query := `SELECT id, name, level, monthly_fee, is_active, created_at, updated_at
			  FROM students WHERE is_active = true`
	var args []interface{}
	if level != "" {
		query += ` AND level = $1`
		args = append(args, level)
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		st := &models.Student{}
		err := rows.Scan(&st.ID, &st.Name, &st.Level, &st.MonthlyFee, &st.IsActive, &st.CreatedAt, &st.UpdatedAt)
		if err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// GetStudent returns one student or ErrNotFound.
func (s *Store) GetStudent(id string) (*models.Student, error) {
	query := `SELECT id, name, level, monthly_fee, is_active, created_at, updated_at
			  FROM students WHERE id = $1`

	st := &models.Student{}
	err := s.db.QueryRow(query, id).Scan(
		&st.ID, &st.Name, &st.Level, &st.MonthlyFee, &st.IsActive, &st.CreatedAt, &st.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return st, err
}

// CountActiveStudents returns the active student headcount snapshotted
// into recaps.
func (s *Store) CountActiveStudents() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true`).Scan(&count)
	return count, err
}

// StudentsByLevel returns active student counts grouped by level.
func (s *Store) StudentsByLevel() ([]models.LevelCount, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*) FROM students WHERE is_active = true GROUP BY level ORDER BY level`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.LevelCount{}
	for rows.Next() {
		var lc models.LevelCount
		if err := rows.Scan(&lc.Level, &lc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, lc)
	}
	return counts, rows.Err()
}

// GetMentor returns one mentor or ErrNotFound.
func (s *Store) GetMentor(id string) (*models.Mentor, error) {
	query := `SELECT id, name, hourly_rate, teaching_levels, is_active, created_at, updated_at
			  FROM mentors WHERE id = $1`

	m := &models.Mentor{}
	err := s.db.QueryRow(query, id).Scan(
		&m.ID, &m.Name, &m.HourlyRate, &m.TeachingLevels, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return m, err
}

// ActiveMentors returns active mentors ordered by name.
func (s *Store) ActiveMentors() ([]*models.Mentor, error) {
	query := `SELECT id, name, hourly_rate, teaching_levels, is_active, created_at, updated_at
			  FROM mentors WHERE is_active = true ORDER BY name ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mentors := []*models.Mentor{}
	for rows.Next() {
		m := &models.Mentor{}
		err := rows.Scan(&m.ID, &m.Name, &m.HourlyRate, &m.TeachingLevels, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, err
		}
		mentors = append(mentors, m)
	}
	return mentors, rows.Err()
}

// CountActiveMentors returns the active mentor headcount snapshotted into
// recaps.
func (s *Store) CountActiveMentors() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM mentors WHERE is_active = true`).Scan(&count)
	return count, err
}
