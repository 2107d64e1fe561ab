// Package entity contains the core business objects of the project.
package entity

// Apartment is a residential unit inside a building.
type Apartment struct {
	Base
	numOfBedrooms  int
	numOfBathrooms int
	floorNumber    int
}

// NewApartment builds a validated Apartment. Negative counts are stored as zero.
func NewApartment(name, propertyType, location string, price, squareFootage float64, bedrooms, bathrooms, floorNumber int) (*Apartment, error) {
	base, err := newBase(name, propertyType, location, price, squareFootage)
	if err != nil {
		return nil, err
	}

	a := &Apartment{Base: base}
	a.SetNumOfBedrooms(bedrooms)
	a.SetNumOfBathrooms(bathrooms)
	a.SetFloorNumber(floorNumber)

	return a, nil
}

// NumOfBedrooms returns the number of bedrooms.
func (a *Apartment) NumOfBedrooms() int { return a.numOfBedrooms }

// SetNumOfBedrooms sets the number of bedrooms.
func (a *Apartment) SetNumOfBedrooms(value int) { a.numOfBedrooms = clampCount(value) }

// NumOfBathrooms returns the number of bathrooms.
func (a *Apartment) NumOfBathrooms() int { return a.numOfBathrooms }

// SetNumOfBathrooms sets the number of bathrooms.
func (a *Apartment) SetNumOfBathrooms(value int) { a.numOfBathrooms = clampCount(value) }

// FloorNumber returns the floor the apartment is on.
func (a *Apartment) FloorNumber() int { return a.floorNumber }

// SetFloorNumber sets the floor the apartment is on.
func (a *Apartment) SetFloorNumber(value int) { a.floorNumber = clampCount(value) }
