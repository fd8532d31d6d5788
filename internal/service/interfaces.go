// Package service defines the interfaces between the ledger engine and its
// collaborators.
package service

import "github.com/jmallory/coinpurse/internal/model"

// Store holds the ordered sequence of expense records and its durable
// backing. Records are identified by 1-based position only; implementations
// must range-check every positional accessor. The interface exists so a
// stable-ID scheme could replace positional identity without touching the
// engine's callers.
type Store interface {
	// Load reads the sequence from durable storage, recovering to an empty
	// sequence on missing or corrupt data. It returns the number of records
	// loaded.
	Load() (int, error)

	// Save writes the full sequence to durable storage, overwriting prior
	// contents.
	Save() error

	// Records returns the current sequence in order.
	Records() []model.Record

	// Len returns the number of records held.
	Len() int

	// Append adds a record at the end of the sequence.
	Append(r model.Record)

	// Get returns the record at the given 1-based index.
	Get(index int) (model.Record, error)

	// Replace overwrites the record at the given 1-based index.
	Replace(index int, r model.Record) error

	// Remove deletes the record at the given 1-based index, shifting later
	// records down, and returns the removed record.
	Remove(index int) (model.Record, error)
}
