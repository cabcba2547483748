package storage

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders like SQLite, no rewrite needed
	return query
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for MySQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}

func (d *MySQLDialect) CreateTablesQueries() []string {
	// VARCHAR(191) keeps the primary key inside the utf8mb4 index limit.
	return []string{
		`CREATE TABLE IF NOT EXISTS review_snapshots (
			word VARCHAR(191) PRIMARY KEY,
			doc MEDIUMTEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS word_snapshots (
			word VARCHAR(191) PRIMARY KEY,
			doc MEDIUMTEXT NOT NULL
		);`,
	}
}
