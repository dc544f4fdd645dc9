package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies
// guarded updates for existing installations.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			level VARCHAR(50) NOT NULL,
			monthly_fee BIGINT NOT NULL DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS mentors (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			hourly_rate BIGINT NOT NULL DEFAULT 0,
			teaching_levels TEXT[] NOT NULL DEFAULT '{}',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			mentor_id UUID NOT NULL REFERENCES mentors(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			level VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'present',
			hours_taught INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			kind VARCHAR(10) NOT NULL,
			category VARCHAR(30) NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			occurred_on DATE NOT NULL,
			reference UUID,
			detail VARCHAR(50) NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			recorded_by VARCHAR(100) NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS spp_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			month INT NOT NULL CHECK (month BETWEEN 1 AND 12),
			year INT NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			method VARCHAR(20) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			receipt_no VARCHAR(50) NOT NULL,
			transaction_id UUID REFERENCES transactions(id) ON DELETE SET NULL,
			recorded_by VARCHAR(100) NOT NULL DEFAULT '',
			paid_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			CONSTRAINT uq_spp_student_period UNIQUE (student_id, month, year)
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_recaps (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			month INT NOT NULL CHECK (month BETWEEN 1 AND 12),
			year INT NOT NULL,
			opening_balance BIGINT NOT NULL DEFAULT 0,
			total_income BIGINT NOT NULL DEFAULT 0,
			total_expense BIGINT NOT NULL DEFAULT 0,
			closing_balance BIGINT NOT NULL DEFAULT 0,
			tuition_income BIGINT NOT NULL DEFAULT 0,
			registration_income BIGINT NOT NULL DEFAULT 0,
			mentor_payment_expense BIGINT NOT NULL DEFAULT 0,
			operational_expense BIGINT NOT NULL DEFAULT 0,
			total_students INT NOT NULL DEFAULT 0,
			total_mentors INT NOT NULL DEFAULT 0,
			generated_by VARCHAR(100) NOT NULL DEFAULT '',
			generated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			CONSTRAINT uq_recap_period UNIQUE (month, year)
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_transactions_occurred_on ON transactions(occurred_on)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_reference ON transactions(reference)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_mentor_date ON attendance(mentor_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_spp_payments_period ON spp_payments(year, month)`,
		// One payroll entry per mentor, level and month. The second
		// concurrent generator hits this index, not a double payment.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_payroll_mentor_period
			ON transactions (reference, detail, date_trunc('month', occurred_on))
			WHERE category = 'mentor_payment'`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating index: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
