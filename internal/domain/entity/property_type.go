// Package entity contains the core business objects of the project.
package entity

import "strings"

// PropertyType is the tag that selects a property variant.
type PropertyType string

const (
	// PropertyTypeHouse tags a House.
	PropertyTypeHouse PropertyType = "House"
	// PropertyTypeApartment tags an Apartment.
	PropertyTypeApartment PropertyType = "Apartment"
	// PropertyTypeCommercialSpace tags a CommercialSpace.
	PropertyTypeCommercialSpace PropertyType = "Commercial Space"
)

// PropertyTypes lists every recognised tag in display order.
var PropertyTypes = []PropertyType{
	PropertyTypeHouse,
	PropertyTypeApartment,
	PropertyTypeCommercialSpace,
}

// String returns the string representation of the PropertyType.
func (t PropertyType) String() string {
	return string(t)
}

// IsValid checks if the PropertyType is a valid value.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCommercialSpace:
		return true
	default:
		return false
	}
}

// ParsePropertyType matches s case-insensitively against the recognised tags
// and returns the title-cased tag.
func ParsePropertyType(s string) (PropertyType, bool) {
	for _, t := range PropertyTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}

	return "", false
}
