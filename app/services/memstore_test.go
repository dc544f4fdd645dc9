package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
	"github.com/RzkyNT/E-Masjid-sub001/app/models"
)

// memStore is an in-memory stand-in for database.Store, shared by the
// service tests.
type memStore struct {
	transactions []*models.Transaction
	recaps       []*models.MonthlyRecap
	students     map[string]*models.Student
	mentors      map[string]*models.Mentor
	payments     []*models.SppPayment
	attendance   []*models.Attendance
	nextID       int
}

func newMemStore() *memStore {
	return &memStore{
		students: make(map[string]*models.Student),
		mentors:  make(map[string]*models.Mentor),
	}
}

func (m *memStore) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *memStore) addStudent(name, level string, fee int64, active bool) *models.Student {
	st := &models.Student{ID: m.id("student"), Name: name, Level: level, MonthlyFee: fee, IsActive: active}
	m.students[st.ID] = st
	return st
}

func (m *memStore) addMentor(name string, rate int64, active bool) *models.Mentor {
	mt := &models.Mentor{ID: m.id("mentor"), Name: name, HourlyRate: rate, IsActive: active}
	m.mentors[mt.ID] = mt
	return mt
}

func (m *memStore) addAttendance(mentorID, level string, date time.Time, status models.AttendanceStatus, hours int) {
	m.attendance = append(m.attendance, &models.Attendance{
		ID: m.id("att"), MentorID: mentorID, Level: level, Date: date, Status: status, HoursTaught: hours,
	})
}

// --- BalanceStore / ledger ---

func (m *memStore) CurrentBalance() (int64, error) {
	var balance int64
	for _, t := range m.transactions {
		balance += t.Signed()
	}
	return balance, nil
}

func (m *memStore) BalanceBefore(date time.Time) (int64, error) {
	var balance int64
	for _, t := range m.transactions {
		if t.OccurredOn.Before(date) {
			balance += t.Signed()
		}
	}
	return balance, nil
}

func (m *memStore) PeriodTotals(month, year int) (models.PeriodTotals, error) {
	var totals models.PeriodTotals
	for _, t := range m.transactions {
		if int(t.OccurredOn.Month()) != month || t.OccurredOn.Year() != year {
			continue
		}
		if t.Kind == models.KindIncome {
			totals.TotalIncome += t.Amount
		} else {
			totals.TotalExpense += t.Amount
		}
		switch t.Category {
		case models.CategoryTuition:
			totals.TuitionIncome += t.Amount
		case models.CategoryRegistration:
			totals.RegistrationIncome += t.Amount
		case models.CategoryMentorPayment:
			totals.MentorPaymentExpense += t.Amount
		case models.CategoryOperational:
			totals.OperationalExpense += t.Amount
		}
	}
	return totals, nil
}

func (m *memStore) CreateTransaction(t *models.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.Category == models.CategoryMentorPayment && t.Reference != nil {
		exists, _ := m.HasPayrollEntry(*t.Reference, t.Detail, int(t.OccurredOn.Month()), t.OccurredOn.Year())
		if exists {
			return database.ErrDuplicatePayroll
		}
	}
	t.ID = m.id("txn")
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	m.transactions = append(m.transactions, t)
	return nil
}

func (m *memStore) UpdateTransaction(t *models.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for i, existing := range m.transactions {
		if existing.ID == t.ID {
			m.transactions[i] = t
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memStore) DeleteTransaction(id string) error {
	for i, t := range m.transactions {
		if t.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memStore) HasPayrollEntry(mentorID, level string, month, year int) (bool, error) {
	for _, t := range m.transactions {
		if t.Category != models.CategoryMentorPayment || t.Reference == nil {
			continue
		}
		if *t.Reference == mentorID && t.Detail == level &&
			int(t.OccurredOn.Month()) == month && t.OccurredOn.Year() == year {
			return true, nil
		}
	}
	return false, nil
}

// --- ObligationStore ---

func (m *memStore) GetStudent(id string) (*models.Student, error) {
	st, ok := m.students[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return st, nil
}

func (m *memStore) ActiveStudents(level string) ([]*models.Student, error) {
	students := []*models.Student{}
	for _, st := range m.students {
		if !st.IsActive {
			continue
		}
		if level != "" && st.Level != level {
			continue
		}
		students = append(students, st)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Name < students[j].Name })
	return students, nil
}

func (m *memStore) GetSppPayment(studentID string, month, year int) (*models.SppPayment, error) {
	for _, p := range m.payments {
		if p.StudentID == studentID && p.Month == month && p.Year == year {
			return p, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memStore) PaidStudentIDs(month, year int) (map[string]bool, error) {
	paid := make(map[string]bool)
	for _, p := range m.payments {
		if p.Month == month && p.Year == year {
			paid[p.StudentID] = true
		}
	}
	return paid, nil
}

func (m *memStore) CreateSppPayment(p *models.SppPayment, entry *models.Transaction) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if _, err := m.GetSppPayment(p.StudentID, p.Month, p.Year); err == nil {
		return database.ErrAlreadyPaid
	}
	p.ID = m.id("spp")
	p.PaidAt = time.Now()
	p.CreatedAt = p.PaidAt
	if err := m.CreateTransaction(entry); err != nil {
		return err
	}
	p.TransactionID = &entry.ID
	m.payments = append(m.payments, p)
	return nil
}

// --- PayrollStore ---

func (m *memStore) GetMentor(id string) (*models.Mentor, error) {
	mt, ok := m.mentors[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return mt, nil
}

func (m *memStore) MentorAttendanceTotals(month, year int) ([]models.MentorHours, error) {
	type key struct{ mentor, level string }
	sums := make(map[key]int)
	for _, a := range m.attendance {
		if a.Status != models.Present {
			continue
		}
		if int(a.Date.Month()) != month || a.Date.Year() != year {
			continue
		}
		sums[key{a.MentorID, a.Level}] += a.HoursTaught
	}

	totals := []models.MentorHours{}
	for k, hours := range sums {
		if hours <= 0 {
			continue
		}
		totals = append(totals, models.MentorHours{MentorID: k.mentor, Level: k.level, Hours: hours})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].MentorID != totals[j].MentorID {
			return totals[i].MentorID < totals[j].MentorID
		}
		return totals[i].Level < totals[j].Level
	})
	return totals, nil
}

func (m *memStore) MentorHoursTaught(month, year int) (int, error) {
	hours := 0
	for _, a := range m.attendance {
		if a.Status == models.Present && int(a.Date.Month()) == month && a.Date.Year() == year {
			hours += a.HoursTaught
		}
	}
	return hours, nil
}

// --- RecapStore ---

func (m *memStore) GetRecap(month, year int) (*models.MonthlyRecap, error) {
	for _, r := range m.recaps {
		if r.Month == month && r.Year == year {
			return r, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memStore) InsertRecap(r *models.MonthlyRecap, force bool) error {
	for i, existing := range m.recaps {
		if existing.Month == r.Month && existing.Year == r.Year {
			if !force {
				return database.ErrAlreadyExists
			}
			r.ID = existing.ID
			r.GeneratedAt = time.Now()
			m.recaps[i] = r
			return nil
		}
	}
	r.ID = m.id("recap")
	r.GeneratedAt = time.Now()
	m.recaps = append(m.recaps, r)
	return nil
}

func (m *memStore) DeleteRecap(month, year int) error {
	for i, r := range m.recaps {
		if r.Month == month && r.Year == year {
			m.recaps = append(m.recaps[:i], m.recaps[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memStore) sortedRecaps() []*models.MonthlyRecap {
	recaps := append([]*models.MonthlyRecap{}, m.recaps...)
	sort.Slice(recaps, func(i, j int) bool {
		if recaps[i].Year != recaps[j].Year {
			return recaps[i].Year > recaps[j].Year
		}
		return recaps[i].Month > recaps[j].Month
	})
	return recaps
}

func (m *memStore) ListRecaps(f database.RecapFilter) ([]*models.MonthlyRecap, database.Pagination, error) {
	matched := []*models.MonthlyRecap{}
	for _, r := range m.sortedRecaps() {
		if f.Year > 0 && r.Year != f.Year {
			continue
		}
		if f.Month > 0 && r.Month != f.Month {
			continue
		}
		matched = append(matched, r)
	}

	page := database.NewPagination(f.Page, f.PageSize, len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], page, nil
}

func (m *memStore) RecentRecaps(limit int) ([]*models.MonthlyRecap, error) {
	recaps := m.sortedRecaps()
	if len(recaps) > limit {
		recaps = recaps[:limit]
	}
	return recaps, nil
}

func (m *memStore) CountActiveStudents() (int, error) {
	count := 0
	for _, st := range m.students {
		if st.IsActive {
			count++
		}
	}
	return count, nil
}

func (m *memStore) CountActiveMentors() (int, error) {
	count := 0
	for _, mt := range m.mentors {
		if mt.IsActive {
			count++
		}
	}
	return count, nil
}

func (m *memStore) StudentsByLevel() ([]models.LevelCount, error) {
	counts := make(map[string]int)
	for _, st := range m.students {
		if st.IsActive {
			counts[st.Level]++
		}
	}
	levels := []models.LevelCount{}
	for level, count := range counts {
		levels = append(levels, models.LevelCount{Level: level, Count: count})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Level < levels[j].Level })
	return levels, nil
}

// date builds a UTC calendar date for test fixtures.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
