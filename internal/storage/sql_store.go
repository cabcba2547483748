package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Barca0412/VocabMaster/internal/models"
)

// SQLStore persists snapshots in two tables, one JSON document per
// record, rewritten inside a transaction on every save. The document
// column carries the same layout as the JSON file backend, so the
// round-trip contract is identical across backends.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore opens the database for the given dialect, configures the
// connection, and creates the snapshot tables when missing.
func NewSQLStore(dialect Dialect, dialectConfig DialectConfig) (*SQLStore, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(dialectConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Apply dialect-specific configuration
	if err := dialect.ConfigureConnection(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	s := &SQLStore{db: db, dialect: dialect}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) createTables() error {
	for _, query := range s.dialect.CreateTablesQueries() {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create snapshot tables: %w", err)
		}
	}
	return nil
}

// LoadReviews reads the review snapshot. Backend read failures return
// an empty slice plus an error wrapping ErrCorruptSnapshot; rows whose
// documents no longer decode are skipped and reported the same way,
// keeping whatever could be recovered.
func (s *SQLStore) LoadReviews() ([]models.ReviewRecord, error) {
	docs, err := s.loadDocs("review_snapshots")
	if err != nil {
		return []models.ReviewRecord{}, fmt.Errorf("%w: review_snapshots: %v", ErrCorruptSnapshot, err)
	}

	records := make([]models.ReviewRecord, 0, len(docs))
	skipped := 0
	for _, doc := range docs {
		var rec models.ReviewRecord
		if err := json.Unmarshal([]byte(doc), &rec); err != nil || !rec.Level.IsValid() {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if skipped > 0 {
		return records, fmt.Errorf("%w: review_snapshots: %d unreadable records", ErrCorruptSnapshot, skipped)
	}
	return records, nil
}

// SaveReviews rewrites the review snapshot table.
func (s *SQLStore) SaveReviews(records []models.ReviewRecord) error {
	rows := make([]snapshotRow, 0, len(records))
	for i := range records {
		doc, err := json.Marshal(&records[i])
		if err != nil {
			return fmt.Errorf("failed to encode review record %q: %w", records[i].Word, err)
		}
		rows = append(rows, snapshotRow{word: records[i].Word, doc: string(doc)})
	}
	return s.rewriteTable("review_snapshots", rows)
}

// LoadWords reads the engagement snapshot, with the same semantics as
// LoadReviews.
func (s *SQLStore) LoadWords() ([]models.WordRecord, error) {
	docs, err := s.loadDocs("word_snapshots")
	if err != nil {
		return []models.WordRecord{}, fmt.Errorf("%w: word_snapshots: %v", ErrCorruptSnapshot, err)
	}

	records := make([]models.WordRecord, 0, len(docs))
	skipped := 0
	for _, doc := range docs {
		var rec models.WordRecord
		if err := json.Unmarshal([]byte(doc), &rec); err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if skipped > 0 {
		return records, fmt.Errorf("%w: word_snapshots: %d unreadable records", ErrCorruptSnapshot, skipped)
	}
	return records, nil
}

// SaveWords rewrites the engagement snapshot table.
func (s *SQLStore) SaveWords(records []models.WordRecord) error {
	rows := make([]snapshotRow, 0, len(records))
	for i := range records {
		doc, err := json.Marshal(&records[i])
		if err != nil {
			return fmt.Errorf("failed to encode word record %q: %w", records[i].Word, err)
		}
		rows = append(rows, snapshotRow{word: records[i].Word, doc: string(doc)})
	}
	return s.rewriteTable("word_snapshots", rows)
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

type snapshotRow struct {
	word string
	doc  string
}

func (s *SQLStore) loadDocs(table string) ([]string, error) {
	rows, err := s.db.Query("SELECT doc FROM " + table + " ORDER BY word")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []string
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// rewriteTable replaces the table contents with the given rows in one
// transaction, so a failed save leaves the previous snapshot intact.
func (s *SQLStore) rewriteTable(table string, rows []snapshotRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.Prepare(s.dialect.RewriteQuery(
		"INSERT INTO " + table + " (word, doc) VALUES (?, ?)"))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row.word, row.doc); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
