package memory

import (
	"context"
	"log/slog"
	"strings"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/pkg/errors"
)

type constructor func(entity.Record) (entity.Property, error)

// constructors maps each recognised tag to the variant built for it.
var constructors = map[entity.PropertyType]constructor{
	entity.PropertyTypeHouse: func(rec entity.Record) (entity.Property, error) {
		return entity.HouseFromRecord(rec)
	},
	entity.PropertyTypeApartment: func(rec entity.Record) (entity.Property, error) {
		return entity.ApartmentFromRecord(rec)
	},
	entity.PropertyTypeCommercialSpace: func(rec entity.Record) (entity.Property, error) {
		return entity.CommercialSpaceFromRecord(rec)
	},
}

// Load builds properties from raw records and appends them in order.
func (s *propertyStore) Load(ctx context.Context, records []entity.Record) (repository.LoadReport, error) {
	var report repository.LoadReport

	for i, rec := range records {
		rawType, err := rec.RawType()
		if err != nil {
			return report, errors.Wrapf(err, "record %d", i)
		}

		propertyType, _ := entity.ParsePropertyType(rawType)
		build, ok := constructors[propertyType]
		if !ok {
			s.logger.WarnContext(ctx, "Property type not supported, skipping record",
				slog.Int("index", i),
				slog.String("property_type", strings.ToLower(rawType)),
			)
			report.Skipped = append(report.Skipped, repository.SkippedRecord{
				Index:        i,
				PropertyType: rawType,
			})

			continue
		}

		property, err := build(rec)
		if err != nil {
			return report, errors.Wrapf(err, "record %d", i)
		}

		if err := s.Add(ctx, property); err != nil {
			return report, errors.Wrapf(err, "record %d", i)
		}
		report.Loaded++
	}

	return report, nil
}
