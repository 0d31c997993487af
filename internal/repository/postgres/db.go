package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// Open connects to Postgres with the given connection string and verifies the
// connection with a ping. The returned pool is safe for concurrent use and is
// shared by every repository.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
