// Package storage provides the data persistence layer for the coinpurse
// application.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmallory/coinpurse/internal/common"
	"github.com/jmallory/coinpurse/internal/model"
)

// JSONStore implements service.Store backed by a single JSON file holding the
// full ordered sequence of records. Every save overwrites the whole file; the
// store assumes a single process and performs no locking.
type JSONStore struct {
	path    string
	records []model.Record
}

// NewJSONStore creates a store backed by the file at path. The parent
// directory is created if missing; the file itself is only written on Save.
func NewJSONStore(path string) (*JSONStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: data file path is empty", common.ErrStoreLoad)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &JSONStore{path: path}, nil
}

// Path returns the durable file path backing this store.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the record sequence from the data file. A missing file means an
// empty ledger. Unreadable or malformed content is not fatal: the store logs
// a warning and starts empty rather than blocking startup.
func (s *JSONStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.records = nil
			return 0, nil
		}
		slog.Warn("could not read data file, starting with empty ledger",
			"path", s.path, "error", err)
		s.records = nil
		return 0, nil
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("data file is corrupt, starting with empty ledger",
			"path", s.path, "error", err)
		s.records = nil
		return 0, nil
	}

	s.records = records
	return len(records), nil
}

// Save writes the full record sequence to the data file, replacing prior
// contents. The write goes to a temporary file first and is renamed into
// place so a failed write never corrupts the previous contents. In-memory
// state is left untouched on failure.
func (s *JSONStore) Save() error {
	data, err := json.MarshalIndent(s.recordsOrEmpty(), "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreSave, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreSave, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreSave, err)
	}

	slog.Debug("saved expenses", "count", len(s.records), "path", s.path)
	return nil
}

// recordsOrEmpty keeps the durable file a JSON array even when the ledger is
// empty; a nil slice would serialize as null.
func (s *JSONStore) recordsOrEmpty() []model.Record {
	if s.records == nil {
		return []model.Record{}
	}
	return s.records
}

// Records returns the current sequence in order. The caller must not mutate
// the returned slice.
func (s *JSONStore) Records() []model.Record {
	return s.records
}

// Len returns the number of records held.
func (s *JSONStore) Len() int {
	return len(s.records)
}

// Append adds a record at the end of the sequence.
func (s *JSONStore) Append(r model.Record) {
	s.records = append(s.records, r)
}

// Get returns the record at the given 1-based index.
func (s *JSONStore) Get(index int) (model.Record, error) {
	if err := s.checkIndex(index); err != nil {
		return model.Record{}, err
	}
	return s.records[index-1], nil
}

// Replace overwrites the record at the given 1-based index.
func (s *JSONStore) Replace(index int, r model.Record) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.records[index-1] = r
	return nil
}

// Remove deletes the record at the given 1-based index and returns it.
// Records after it shift down by one position.
func (s *JSONStore) Remove(index int) (model.Record, error) {
	if err := s.checkIndex(index); err != nil {
		return model.Record{}, err
	}
	removed := s.records[index-1]
	s.records = append(s.records[:index-1], s.records[index:]...)
	return removed, nil
}

func (s *JSONStore) checkIndex(index int) error {
	if index < 1 || index > len(s.records) {
		return fmt.Errorf("%w: %d (have %d expenses)",
			common.ErrIndexOutOfRange, index, len(s.records))
	}
	return nil
}
