// Package store provides SQLite persistence for design documents: a
// local history of MAS documents with their solver results, so a
// design session can be resumed or compared later.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mas-protocol/mas-go/pkg/mas"
)

// Design is one stored design document with its metadata row.
type Design struct {
	ID        string
	Name      string
	Topology  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Document  *mas.Mas
}

// Design lifecycle states.
const (
	StatusDraft     = "draft"
	StatusSimulated = "simulated"
	StatusArchived  = "archived"
)

// Store provides SQLite persistence for designs.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new store with the given database path.
// Use ":memory:" for an in-memory database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	_, err = db.Exec(`
		PRAGMA foreign_keys = ON;
		PRAGMA journal_mode = WAL;
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	s := &Store{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS designs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		topology TEXT,
		status TEXT NOT NULL DEFAULT 'draft',
		document_json TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_designs_status ON designs(status);
	CREATE INDEX IF NOT EXISTS idx_designs_updated_at ON designs(updated_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a new design and returns its generated ID. The document
// is stored in its canonical JSON wire form.
func (s *Store) Save(name string, doc *mas.Mas) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := doc.ToJSON()
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.db.Exec(`
		INSERT INTO designs (id, name, topology, status, document_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, name, topologyOf(doc), StatusDraft, string(data), now, now)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update replaces the stored document and bumps its status when the
// new document carries outputs.
func (s *Store) Update(id string, doc *mas.Mas) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := doc.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	status := StatusDraft
	if len(doc.Outputs) > 0 {
		status = StatusSimulated
	}
	res, err := s.db.Exec(`
		UPDATE designs
		SET document_json = ?, topology = ?, status = ?, updated_at = ?
		WHERE id = ?
	`, string(data), topologyOf(doc), status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("design %s not found", id)
	}
	return nil
}

// Get retrieves a design by ID, decoding the stored document. Returns
// nil when no design exists.
func (s *Store) Get(id string) (*Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var d Design
	var docJSON string
	err := s.db.QueryRow(`
		SELECT id, name, topology, status, document_json, created_at, updated_at
		FROM designs WHERE id = ?
	`, id).Scan(&d.ID, &d.Name, &d.Topology, &d.Status, &docJSON, &d.CreatedAt, &d.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d.Document, err = mas.FromJSON([]byte(docJSON))
	if err != nil {
		return nil, fmt.Errorf("stored document %s does not decode: %w", id, err)
	}
	return &d, nil
}

// List retrieves design rows ordered by most recent first, without
// decoding documents.
func (s *Store) List(limit, offset int) ([]Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT id, name, topology, status, created_at, updated_at
		FROM designs
		ORDER BY updated_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []Design
	for rows.Next() {
		var d Design
		if err := rows.Scan(&d.ID, &d.Name, &d.Topology, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, rows.Err()
}

// Count returns the total number of stored designs.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM designs").Scan(&count)
	return count, err
}

// SetStatus updates the lifecycle status of a design.
func (s *Store) SetStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		UPDATE designs SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now().UTC(), id)
	return err
}

// Delete removes a design.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM designs WHERE id = ?", id)
	return err
}

func topologyOf(doc *mas.Mas) string {
	if t := doc.Inputs.DesignRequirements.Topology; t != nil {
		return string(*t)
	}
	return ""
}
