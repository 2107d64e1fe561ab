// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"estate/internal/domain/entity"
)

// SnapshotRepository reads and writes flat JSON property documents.
type SnapshotRepository interface {
	// ReadRecords returns the raw records stored under key.
	// Returns domain ErrSourceNotFound if nothing is stored under key.
	ReadRecords(ctx context.Context, key string) ([]entity.Record, error)

	// WriteRecords replaces the document stored under key.
	WriteRecords(ctx context.Context, key string, records []map[string]any) error
}
