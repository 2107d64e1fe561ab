// Package entity contains the core business objects of the project.
package entity

// House is a detached residential property.
type House struct {
	Base
	numOfBedrooms  int
	numOfBathrooms int
	numOfFloors    int
}

// NewHouse builds a validated House. Negative counts are stored as zero.
func NewHouse(name, propertyType, location string, price, squareFootage float64, bedrooms, bathrooms, floors int) (*House, error) {
	base, err := newBase(name, propertyType, location, price, squareFootage)
	if err != nil {
		return nil, err
	}

	h := &House{Base: base}
	h.SetNumOfBedrooms(bedrooms)
	h.SetNumOfBathrooms(bathrooms)
	h.SetNumOfFloors(floors)

	return h, nil
}

// NumOfBedrooms returns the number of bedrooms.
func (h *House) NumOfBedrooms() int { return h.numOfBedrooms }

// SetNumOfBedrooms sets the number of bedrooms.
func (h *House) SetNumOfBedrooms(value int) { h.numOfBedrooms = clampCount(value) }

// NumOfBathrooms returns the number of bathrooms.
func (h *House) NumOfBathrooms() int { return h.numOfBathrooms }

// SetNumOfBathrooms sets the number of bathrooms.
func (h *House) SetNumOfBathrooms(value int) { h.numOfBathrooms = clampCount(value) }

// NumOfFloors returns the number of floors.
func (h *House) NumOfFloors() int { return h.numOfFloors }

// SetNumOfFloors sets the number of floors.
func (h *House) SetNumOfFloors(value int) { h.numOfFloors = clampCount(value) }
