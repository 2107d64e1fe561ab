// Package entity contains the core business objects of the project.
package entity

// CommercialSpace is a property let or sold for business use.
type CommercialSpace struct {
	Base
	businessType string
}

// NewCommercialSpace builds a validated CommercialSpace.
func NewCommercialSpace(name, propertyType, location string, price, squareFootage float64, businessType string) (*CommercialSpace, error) {
	base, err := newBase(name, propertyType, location, price, squareFootage)
	if err != nil {
		return nil, err
	}

	return &CommercialSpace{Base: base, businessType: businessType}, nil
}

// BusinessType returns the kind of business the space is intended for.
func (c *CommercialSpace) BusinessType() string { return c.businessType }

// SetBusinessType sets the kind of business the space is intended for.
func (c *CommercialSpace) SetBusinessType(value string) { c.businessType = value }
