// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// Sort attributes and orders understood by PropertyRepository.Sort.
const (
	SortByPrice         = "price"
	SortBySquareFootage = "square_footage"

	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

// SkippedRecord describes a record dropped during a load because its
// property_type is not recognised.
type SkippedRecord struct {
	Index        int    `json:"index"`
	PropertyType string `json:"property_type"`
}

// LoadReport summarises a load.
type LoadReport struct {
	Loaded  int             `json:"loaded"`
	Skipped []SkippedRecord `json:"skipped"`
}

// PropertyRepository owns the ordered property collection. Query methods never
// reorder or modify the stored collection; they return fresh slices.
type PropertyRepository interface {
	// Load builds properties from raw records and appends them in order.
	// Records of unknown type are skipped and reported. Any other failure aborts
	// the load; properties appended before it stay in the collection.
	Load(ctx context.Context, records []entity.Record) (LoadReport, error)

	// Add appends a property to the collection.
	Add(ctx context.Context, property entity.Property) error

	// All returns every property in load order.
	All() []entity.Property

	// Len returns the number of stored properties.
	Len() int

	// FindByIDs resolves ids in the order given. Unknown ids are ignored.
	FindByIDs(ids []uuid.UUID) []entity.Property

	// FilterByLocation matches location case-insensitively.
	FilterByLocation(location string) []entity.Property

	// FilterByPrice returns properties priced within [minPrice, maxPrice]. A nil minimum means
	// zero; a nil maximum means the highest price currently stored.
	FilterByPrice(minPrice, maxPrice *float64) ([]entity.Property, error)

	// FilterBySquareFootage works like FilterByPrice on square footage.
	FilterBySquareFootage(minFootage, maxFootage *float64) ([]entity.Property, error)

	// FilterByPropertyType matches the type tag case-insensitively.
	FilterByPropertyType(propertyType string) []entity.Property

	// Sort orders properties by SortByPrice, or by square footage for any other
	// attribute. OrderDescending reverses; anything else sorts ascending.
	Sort(attribute, order string) []entity.Property
}
