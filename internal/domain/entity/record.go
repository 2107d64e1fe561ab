// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"reflect"

	domainerrors "estate/internal/domain/errors"

	"github.com/go-viper/mapstructure/v2"
)

// Record is a raw property object as it appears in a JSON document or form.
// Numbers are expected as json.Number or Go numeric values.
type Record map[string]any

// RawType returns the record's property_type field as written in the source.
func (r Record) RawType() (string, error) {
	raw, ok := r["property_type"]
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("property_type is required")
	}

	s, ok := raw.(string)
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("property_type must be a string")
	}

	return s, nil
}

type houseRecord struct {
	Name           string  `json:"name"`
	PropertyType   string  `json:"property_type"`
	Location       string  `json:"location"`
	Price          float64 `json:"price"`
	SquareFootage  float64 `json:"square_footage"`
	NumOfBedrooms  int     `json:"num_of_bedrooms"`
	NumOfBathrooms int     `json:"num_of_bathrooms"`
	NumOfFloors    int     `json:"num_of_floors"`
}

type apartmentRecord struct {
	Name           string  `json:"name"`
	PropertyType   string  `json:"property_type"`
	Location       string  `json:"location"`
	Price          float64 `json:"price"`
	SquareFootage  float64 `json:"square_footage"`
	NumOfBedrooms  int     `json:"num_of_bedrooms"`
	NumOfBathrooms int     `json:"num_of_bathrooms"`
	FloorNumber    int     `json:"floor_number"`
}

type commercialSpaceRecord struct {
	Name          string  `json:"name"`
	PropertyType  string  `json:"property_type"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	SquareFootage float64 `json:"square_footage"`
	BusinessType  string  `json:"business_type"`
}

// HouseFromRecord builds a House from a raw record.
func HouseFromRecord(rec Record) (*House, error) {
	var f houseRecord
	if err := decodeRecord(rec, &f); err != nil {
		return nil, err
	}

	return NewHouse(f.Name, f.PropertyType, f.Location, f.Price, f.SquareFootage,
		f.NumOfBedrooms, f.NumOfBathrooms, f.NumOfFloors)
}

// ApartmentFromRecord builds an Apartment from a raw record.
func ApartmentFromRecord(rec Record) (*Apartment, error) {
	var f apartmentRecord
	if err := decodeRecord(rec, &f); err != nil {
		return nil, err
	}

	return NewApartment(f.Name, f.PropertyType, f.Location, f.Price, f.SquareFootage,
		f.NumOfBedrooms, f.NumOfBathrooms, f.FloorNumber)
}

// CommercialSpaceFromRecord builds a CommercialSpace from a raw record.
func CommercialSpaceFromRecord(rec Record) (*CommercialSpace, error) {
	var f commercialSpaceRecord
	if err := decodeRecord(rec, &f); err != nil {
		return nil, err
	}

	return NewCommercialSpace(f.Name, f.PropertyType, f.Location, f.Price, f.SquareFootage, f.BusinessType)
}

// decodeRecord copies rec into out. Every field of out must be present and
// non-null, and rec must not carry fields out does not know about.
func decodeRecord(rec Record, out any) error {
	for field, value := range rec {
		if value == nil {
			return domainerrors.ErrValidationFailed.WithDetails(field + " must not be null")
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		TagName:     "json",
		ErrorUnset:  true,
		ErrorUnused: true,
		DecodeHook:  rejectFractionalCounts,
	})
	if err != nil {
		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	if err := decoder.Decode(map[string]any(rec)); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// rejectFractionalCounts stops mapstructure from truncating floats into int
// fields; counts must arrive as integers.
func rejectFractionalCounts(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}

	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		return nil, fmt.Errorf("expected an integer, got %v", data)
	default:
		return data, nil
	}
}
