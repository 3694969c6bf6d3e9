// Package store persists generated Solution Architecture Documents and
// ROI snapshots to SQLite so a sales engineer can pull up past discovery
// sessions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store handles queries to the SQLite archive database
type Store struct {
	db *sql.DB
}

// NewStore creates a new archive store
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection is still usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// initSchema creates the archive tables if they don't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS sads (
			id TEXT PRIMARY KEY,
			prompt TEXT NOT NULL,
			title TEXT NOT NULL,
			document TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS roi_snapshots (
			id TEXT PRIMARY KEY,
			scenario_id TEXT NOT NULL,
			state TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// SADRecord is one archived generation: the prompt that produced it, the
// use-case title for listings, and the full document JSON.
type SADRecord struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Title     string    `json:"title"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveSAD archives a generated document and returns its assigned id.
func (s *Store) SaveSAD(prompt, title string, document interface{}) (string, error) {
	blob, err := json.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.NewString()
	query := `INSERT INTO sads (id, prompt, title, document) VALUES (?, ?, ?, ?)`
	if _, err := s.db.Exec(query, id, prompt, title, string(blob)); err != nil {
		return "", fmt.Errorf("failed to insert SAD: %w", err)
	}

	return id, nil
}

// GetSAD returns one archived document by id, or nil if absent.
func (s *Store) GetSAD(id string) (*SADRecord, error) {
	query := `SELECT id, prompt, title, document, created_at FROM sads WHERE id = ?`

	row := s.db.QueryRow(query, id)

	var rec SADRecord
	err := row.Scan(&rec.ID, &rec.Prompt, &rec.Title, &rec.Document, &rec.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan SAD: %w", err)
	}

	return &rec, nil
}

// ListSADs returns the most recent archived documents, newest first.
func (s *Store) ListSADs(limit int) ([]SADRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, prompt, title, document, created_at FROM sads ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query SADs: %w", err)
	}
	defer rows.Close()

	var records []SADRecord
	for rows.Next() {
		var rec SADRecord
		if err := rows.Scan(&rec.ID, &rec.Prompt, &rec.Title, &rec.Document, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan SAD row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating SAD rows: %w", err)
	}

	return records, nil
}

// SnapshotRecord captures one simulator configuration and its computed
// outcome for later comparison.
type SnapshotRecord struct {
	ID         string    `json:"id"`
	ScenarioID string    `json:"scenario_id"`
	State      string    `json:"state"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaveSnapshot archives a simulator state and its ROI result.
func (s *Store) SaveSnapshot(scenarioID string, state, result interface{}) (string, error) {
	stateBlob, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	resultBlob, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	id := uuid.NewString()
	query := `INSERT INTO roi_snapshots (id, scenario_id, state, result) VALUES (?, ?, ?, ?)`
	if _, err := s.db.Exec(query, id, scenarioID, string(stateBlob), string(resultBlob)); err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return id, nil
}

// ListSnapshots returns archived snapshots, optionally filtered by
// scenario, newest first.
func (s *Store) ListSnapshots(scenarioID string, limit int) ([]SnapshotRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, scenario_id, state, result, created_at FROM roi_snapshots`
	var args []interface{}
	if scenarioID != "" {
		query += ` WHERE scenario_id = ?`
		args = append(args, scenarioID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var records []SnapshotRecord
	for rows.Next() {
		var rec SnapshotRecord
		if err := rows.Scan(&rec.ID, &rec.ScenarioID, &rec.State, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", err)
	}

	return records, nil
}
