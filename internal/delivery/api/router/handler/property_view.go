package handler

import (
	"fmt"
	"strconv"
	"strings"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"

	"github.com/google/uuid"
)

// PropertyResponse is the wire and page representation of a property
type PropertyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	PropertyType  string    `json:"property_type"`
	Location      string    `json:"location"`
	Price         float64   `json:"price"`
	SquareFootage float64   `json:"square_footage"`

	NumOfBedrooms  *int   `json:"num_of_bedrooms,omitempty"`
	NumOfBathrooms *int   `json:"num_of_bathrooms,omitempty"`
	NumOfFloors    *int   `json:"num_of_floors,omitempty"`
	FloorNumber    *int   `json:"floor_number,omitempty"`
	BusinessType   string `json:"business_type,omitempty"`

	// Details is a short human summary of the variant fields, used by the pages
	Details []string `json:"-"`
}

func newPropertyResponse(p entity.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:            p.ID(),
		Name:          p.Name(),
		PropertyType:  p.PropertyType().String(),
		Location:      p.Location(),
		Price:         p.Price(),
		SquareFootage: p.SquareFootage(),
	}

	switch v := p.(type) {
	case *entity.House:
		resp.NumOfBedrooms = intPtr(v.NumOfBedrooms())
		resp.NumOfBathrooms = intPtr(v.NumOfBathrooms())
		resp.NumOfFloors = intPtr(v.NumOfFloors())
		resp.Details = []string{
			fmt.Sprintf("%d bedrooms", v.NumOfBedrooms()),
			fmt.Sprintf("%d bathrooms", v.NumOfBathrooms()),
			fmt.Sprintf("%d floors", v.NumOfFloors()),
		}
	case *entity.Apartment:
		resp.NumOfBedrooms = intPtr(v.NumOfBedrooms())
		resp.NumOfBathrooms = intPtr(v.NumOfBathrooms())
		resp.FloorNumber = intPtr(v.FloorNumber())
		resp.Details = []string{
			fmt.Sprintf("%d bedrooms", v.NumOfBedrooms()),
			fmt.Sprintf("%d bathrooms", v.NumOfBathrooms()),
			fmt.Sprintf("floor %d", v.FloorNumber()),
		}
	case *entity.CommercialSpace:
		resp.BusinessType = v.BusinessType()
		resp.Details = []string{v.BusinessType()}
	}

	return resp
}

func newPropertyResponses(props []entity.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, newPropertyResponse(p))
	}

	return out
}

func intPtr(v int) *int { return &v }

// parseBound turns an optional numeric form value into a range bound. An empty
// value means the bound is open.
func parseBound(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be numeric")
	}

	return &v, nil
}

// parseIDs converts validated uuid strings, keeping their order.
func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid property id %q", s))
		}
		ids = append(ids, id)
	}

	return ids, nil
}
