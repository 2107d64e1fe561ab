package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// PropertyQuery combines the listing filters. Empty or nil fields are not applied.
// Results keep load order unless SortBy is set.
type PropertyQuery struct {
	Location         string
	PropertyType     string
	MinPrice         *float64
	MaxPrice         *float64
	MinSquareFootage *float64
	MaxSquareFootage *float64
	SortBy           string
	Order            string
}

// SaveResult describes a written selection.
type SaveResult struct {
	Key        string      `json:"key"`
	Saved      int         `json:"saved"`
	UnknownIDs []uuid.UUID `json:"unknown_ids,omitempty"`
}

// PropertyUsecase defines the interface for browsing and saving properties
type PropertyUsecase interface {
	// LoadProperties fills the store from the configured input document
	LoadProperties(ctx context.Context) (repository.LoadReport, error)

	// ListProperties returns every property in load order
	ListProperties(ctx context.Context) []entity.Property

	// FilterByLocation returns properties at location (case-insensitive)
	FilterByLocation(ctx context.Context, location string) []entity.Property

	// FilterByPrice returns properties in the inclusive price range
	FilterByPrice(ctx context.Context, minPrice, maxPrice *float64) ([]entity.Property, error)

	// FilterBySquareFootage returns properties in the inclusive square footage range
	FilterBySquareFootage(ctx context.Context, minFootage, maxFootage *float64) ([]entity.Property, error)

	// FilterByPropertyType returns properties of the given type (case-insensitive)
	FilterByPropertyType(ctx context.Context, propertyType string) []entity.Property

	// SortProperties orders every property by attribute and order
	SortProperties(ctx context.Context, attribute, order string) []entity.Property

	// Search applies every filter set in query and intersects the results
	Search(ctx context.Context, query PropertyQuery) ([]entity.Property, error)

	// SaveSelection writes the properties with the given ids to the output document
	SaveSelection(ctx context.Context, ids []uuid.UUID) (*SaveResult, error)
}
