package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// ─── Models ──────────────────────────────────────────────────────────────────

// Trip is one generated itinerary. Immutable once written; the history is
// append-only and read newest-first.
type Trip struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Itinerary   string    `json:"itinerary"`
	PDFData     []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// ─── Init ─────────────────────────────────────────────────────────────────────

func InitDB() {
	dsn := buildDSN()

	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Retry connection up to 10 times (hosted DB may take a moment to be ready)
	for i := 0; i < 10; i++ {
		if err = DB.Ping(); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/10: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("❌ Failed to connect to database after retries: %v", err)
	}

	migrate()
	log.Println("✅ Database connected and migrated")
}

func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASSWORD", "postgres")
	name := getEnv("DB_NAME", "tripgenix")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

// ─── Migrations ───────────────────────────────────────────────────────────────

func migrate() {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id          TEXT PRIMARY KEY,
			session_id  TEXT NOT NULL,
			source      TEXT,
			destination TEXT NOT NULL,
			itinerary   TEXT NOT NULL,
			pdf_data    BYTEA,
			created_at  TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_trips_session_created
			ON trips(session_id, created_at DESC)`,
	}

	for _, m := range migrations {
		if _, err := DB.Exec(m); err != nil {
			log.Fatalf("❌ Migration failed: %v\nSQL: %s", err, m)
		}
	}
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

func SaveTrip(t *Trip) error {
	_, err := DB.Exec(`
		INSERT INTO trips (id, session_id, source, destination, itinerary, pdf_data)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.SessionID, t.Source, t.Destination, t.Itinerary, t.PDFData)
	return err
}

func GetTrip(id string) (*Trip, error) {
	t := &Trip{}
	err := DB.QueryRow(`
		SELECT id, session_id, source, destination, itinerary, pdf_data, created_at
		FROM trips WHERE id = $1`, id).
		Scan(&t.ID, &t.SessionID, &t.Source, &t.Destination, &t.Itinerary, &t.PDFData, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTrips returns a session's history, newest first.
func ListTrips(sessionID string) ([]Trip, error) {
	rows, err := DB.Query(`
		SELECT id, session_id, source, destination, itinerary, created_at
		FROM trips WHERE session_id = $1
		ORDER BY created_at DESC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []Trip{}
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Source, &t.Destination, &t.Itinerary, &t.CreatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// ClearTrips wipes a session's history. Explicit user action only.
func ClearTrips(sessionID string) error {
	_, err := DB.Exec(`DELETE FROM trips WHERE session_id = $1`, sessionID)
	return err
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
