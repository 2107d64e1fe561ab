package memory

import (
	"cmp"
	"slices"
	"strings"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
)

// FilterByLocation matches location case-insensitively.
func (s *propertyStore) FilterByLocation(location string) []entity.Property {
	return s.filter(func(p entity.Property) bool {
		return strings.EqualFold(p.Location(), location)
	})
}

// FilterByPropertyType matches the type tag case-insensitively.
func (s *propertyStore) FilterByPropertyType(propertyType string) []entity.Property {
	return s.filter(func(p entity.Property) bool {
		return strings.EqualFold(p.PropertyType().String(), propertyType)
	})
}

// FilterByPrice returns properties priced within [min, max].
func (s *propertyStore) FilterByPrice(minPrice, maxPrice *float64) ([]entity.Property, error) {
	return s.filterRange(entity.Property.Price, minPrice, maxPrice)
}

// FilterBySquareFootage returns properties whose square footage is within [min, max].
func (s *propertyStore) FilterBySquareFootage(minFootage, maxFootage *float64) ([]entity.Property, error) {
	return s.filterRange(entity.Property.SquareFootage, minFootage, maxFootage)
}

// Sort orders a copy of the collection. Ties keep load order in both directions.
func (s *propertyStore) Sort(attribute, order string) []entity.Property {
	key := entity.Property.SquareFootage
	if attribute == repository.SortByPrice {
		key = entity.Property.Price
	}

	sorted := s.All()
	if order == repository.OrderDescending {
		slices.SortStableFunc(sorted, func(a, b entity.Property) int {
			return cmp.Compare(key(b), key(a))
		})
	} else {
		slices.SortStableFunc(sorted, func(a, b entity.Property) int {
			return cmp.Compare(key(a), key(b))
		})
	}

	return sorted
}

func (s *propertyStore) filter(keep func(entity.Property) bool) []entity.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Property, 0)
	for _, p := range s.properties {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out
}

func (s *propertyStore) filterRange(value func(entity.Property) float64, lowerBound, upperBound *float64) ([]entity.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := 0.0
	if lowerBound != nil {
		lower = *lowerBound
	}

	var upper float64
	if upperBound != nil {
		upper = *upperBound
	} else {
		if len(s.properties) == 0 {
			return nil, domainerrors.ErrEmptyCollection.WithDetails("cannot derive an upper bound from an empty collection")
		}
		upper = value(s.properties[0])
		for _, p := range s.properties[1:] {
			upper = max(upper, value(p))
		}
	}

	out := make([]entity.Property, 0)
	for _, p := range s.properties {
		if v := value(p); lower <= v && v <= upper {
			out = append(out, p)
		}
	}

	return out, nil
}
