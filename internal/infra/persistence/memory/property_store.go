// Package memory contains the in-memory implementation of the property collection.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// propertyStore implements the repository.PropertyRepository interface.
// Insertion order is load order.
type propertyStore struct {
	logger *slog.Logger

	mu         sync.RWMutex
	properties []entity.Property
}

// NewPropertyStore is the constructor for propertyStore.
func NewPropertyStore(logger *slog.Logger) repository.PropertyRepository {
	return &propertyStore{
		logger: logger,
	}
}

// Add appends a property to the collection.
func (s *propertyStore) Add(_ context.Context, property entity.Property) error {
	if property == nil {
		return domainerrors.ErrValidationFailed.WithDetails("cannot add a nil property")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.properties = append(s.properties, property)

	return nil
}

// All returns every property in load order.
func (s *propertyStore) All() []entity.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Property, len(s.properties))
	copy(out, s.properties)

	return out
}

// Len returns the number of stored properties.
func (s *propertyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.properties)
}

// FindByIDs resolves ids in the order given. Unknown ids are ignored.
func (s *propertyStore) FindByIDs(ids []uuid.UUID) []entity.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[uuid.UUID]entity.Property, len(s.properties))
	for _, p := range s.properties {
		byID[p.ID()] = p
	}

	out := make([]entity.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}

	return out
}
