package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// Config holds the constructed application dependencies. It is returned
// from Load and passed down explicitly; nothing in this package is a
// global.
type Config struct {
	DB   *sql.DB
	Addr string
}

// Load reads the environment and opens the database connection.
// DATABASE_URL wins; otherwise the connection string is assembled from
// PGHOST/PGPORT/PGUSER/PGPASSWORD/PGDATABASE with local defaults.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := envOr("PGHOST", "localhost")
		port := envOr("PGPORT", "5432")
		user := envOr("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := envOr("PGDATABASE", "emasjid")

		dsn = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password != "" {
			dsn += " password=" + password
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("cannot establish database connection: %v", err)
	}
	log.Println("Database connected successfully")

	addr := ":" + envOr("PORT", "8080")
	return &Config{DB: db, Addr: addr}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
