// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"

	domainerrors "estate/internal/domain/errors"

	"github.com/google/uuid"
)

// Property is a real-estate listing. It is implemented only by *House,
// *Apartment and *CommercialSpace.
type Property interface {
	ID() uuid.UUID
	Name() string
	PropertyType() PropertyType
	Location() string
	Price() float64
	SquareFootage() float64

	base() *Base
}

// Base holds the attributes shared by every property variant.
type Base struct {
	id            uuid.UUID
	name          string
	propertyType  PropertyType
	location      string
	price         float64
	squareFootage float64
}

func newBase(name, propertyType, location string, price, squareFootage float64) (Base, error) {
	b := Base{id: uuid.New()}
	b.SetName(name)
	if err := b.SetPropertyType(propertyType); err != nil {
		return Base{}, err
	}
	b.SetLocation(location)
	b.SetPrice(price)
	b.SetSquareFootage(squareFootage)

	return b, nil
}

func (b *Base) base() *Base { return b }

// ID returns the identifier generated at construction.
func (b *Base) ID() uuid.UUID { return b.id }

// Name returns the listing name.
func (b *Base) Name() string { return b.name }

// SetName sets the listing name.
func (b *Base) SetName(name string) { b.name = name }

// PropertyType returns the normalised type tag.
func (b *Base) PropertyType() PropertyType { return b.propertyType }

// SetPropertyType validates value case-insensitively and stores it in title case.
func (b *Base) SetPropertyType(value string) error {
	t, ok := ParsePropertyType(value)
	if !ok {
		return domainerrors.ErrUnsupportedPropertyType.WithDetails(fmt.Sprintf("got %q", value))
	}
	b.propertyType = t

	return nil
}

// Location returns the listing location.
func (b *Base) Location() string { return b.location }

// SetLocation sets the listing location.
func (b *Base) SetLocation(location string) { b.location = location }

// Price returns the listing price.
func (b *Base) Price() float64 { return b.price }

// SetPrice sets the price, clamping negative values to zero.
func (b *Base) SetPrice(value float64) { b.price = max(value, 0) }

// SquareFootage returns the floor area.
func (b *Base) SquareFootage() float64 { return b.squareFootage }

// SetSquareFootage sets the floor area, clamping negative values to zero.
func (b *Base) SetSquareFootage(value float64) { b.squareFootage = max(value, 0) }

// Dict returns the flat mapping of p's own fields, the shape written to
// snapshots. The id is not part of it.
func Dict(p Property) map[string]any {
	b := p.base()
	d := map[string]any{
		"name":           b.name,
		"property_type":  b.propertyType.String(),
		"location":       b.location,
		"price":          b.price,
		"square_footage": b.squareFootage,
	}

	switch v := p.(type) {
	case *House:
		d["num_of_bedrooms"] = v.numOfBedrooms
		d["num_of_bathrooms"] = v.numOfBathrooms
		d["num_of_floors"] = v.numOfFloors
	case *Apartment:
		d["num_of_bedrooms"] = v.numOfBedrooms
		d["num_of_bathrooms"] = v.numOfBathrooms
		d["floor_number"] = v.floorNumber
	case *CommercialSpace:
		d["business_type"] = v.businessType
	}

	return d
}

func clampCount(value int) int {
	return max(value, 0)
}
