package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/infra/metrics"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PropertyServiceOptions names the snapshot documents the service works with.
type PropertyServiceOptions struct {
	InputKey  string
	OutputKey string
}

// PropertyServiceParams holds dependencies for the property service, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	Store     repository.PropertyRepository
	Snapshots repository.SnapshotRepository
	Metrics   *metrics.Metrics
	Options   PropertyServiceOptions
	Logger    *slog.Logger
}

type propertyService struct {
	store     repository.PropertyRepository
	snapshots repository.SnapshotRepository
	metrics   *metrics.Metrics
	opts      PropertyServiceOptions
	logger    *slog.Logger
}

// NewPropertyService creates a new property service instance
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		store:     params.Store,
		snapshots: params.Snapshots,
		metrics:   params.Metrics,
		opts:      params.Options,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadProperties fills the store from the configured input document
func (srv *propertyService) LoadProperties(ctx context.Context) (repository.LoadReport, error) {
	logger := srv.log(ctx).With(slog.String("key", srv.opts.InputKey))

	records, err := srv.snapshots.ReadRecords(ctx, srv.opts.InputKey)
	if err != nil {
		logger.Error("Failed to read property source", slog.Any("error", err))

		return repository.LoadReport{}, errors.Wrap(err, "read property source")
	}

	report, err := srv.store.Load(ctx, records)
	srv.metrics.ObserveLoad(report.Loaded, len(report.Skipped), srv.store.Len())
	if err != nil {
		logger.Error("Failed to load properties",
			slog.Int("loaded", report.Loaded),
			slog.Any("error", err),
		)

		return report, errors.Wrap(err, "load properties")
	}

	logger.Info("Properties loaded",
		slog.Int("loaded", report.Loaded),
		slog.Int("skipped", len(report.Skipped)),
	)

	return report, nil
}

// ListProperties returns every property in load order
func (srv *propertyService) ListProperties(ctx context.Context) []entity.Property {
	defer srv.metrics.ObserveQuery("list", time.Now(), nil)

	return srv.store.All()
}

// FilterByLocation returns properties at location (case-insensitive)
func (srv *propertyService) FilterByLocation(ctx context.Context, location string) []entity.Property {
	defer srv.metrics.ObserveQuery("filter_by_location", time.Now(), nil)

	return srv.store.FilterByLocation(location)
}

// FilterByPrice returns properties in the inclusive price range
func (srv *propertyService) FilterByPrice(ctx context.Context, minPrice, maxPrice *float64) (props []entity.Property, err error) {
	defer func(start time.Time) { srv.metrics.ObserveQuery("filter_by_price", start, err) }(time.Now())

	props, err = srv.store.FilterByPrice(minPrice, maxPrice)
	if err != nil {
		return nil, errors.Wrap(err, "filter by price")
	}

	return props, nil
}

// FilterBySquareFootage returns properties in the inclusive square footage range
func (srv *propertyService) FilterBySquareFootage(ctx context.Context, minFootage, maxFootage *float64) (props []entity.Property, err error) {
	defer func(start time.Time) { srv.metrics.ObserveQuery("filter_by_square_footage", start, err) }(time.Now())

	props, err = srv.store.FilterBySquareFootage(minFootage, maxFootage)
	if err != nil {
		return nil, errors.Wrap(err, "filter by square footage")
	}

	return props, nil
}

// FilterByPropertyType returns properties of the given type (case-insensitive)
func (srv *propertyService) FilterByPropertyType(ctx context.Context, propertyType string) []entity.Property {
	defer srv.metrics.ObserveQuery("filter_by_property_type", time.Now(), nil)

	return srv.store.FilterByPropertyType(propertyType)
}

// SortProperties orders every property by attribute and order
func (srv *propertyService) SortProperties(ctx context.Context, attribute, order string) []entity.Property {
	defer srv.metrics.ObserveQuery("sort", time.Now(), nil)

	return srv.store.Sort(attribute, order)
}

// Search applies every filter set in query and intersects the results
func (srv *propertyService) Search(ctx context.Context, query usecase.PropertyQuery) (result []entity.Property, err error) {
	defer func(start time.Time) { srv.metrics.ObserveQuery("search", start, err) }(time.Now())

	if query.SortBy != "" {
		result = srv.store.Sort(query.SortBy, query.Order)
	} else {
		result = srv.store.All()
	}

	narrow := func(matches []entity.Property) {
		keep := make(map[uuid.UUID]struct{}, len(matches))
		for _, p := range matches {
			keep[p.ID()] = struct{}{}
		}
		result = slices.DeleteFunc(result, func(p entity.Property) bool {
			_, ok := keep[p.ID()]

			return !ok
		})
	}

	if query.Location != "" {
		narrow(srv.store.FilterByLocation(query.Location))
	}
	if query.PropertyType != "" {
		narrow(srv.store.FilterByPropertyType(query.PropertyType))
	}
	if query.MinPrice != nil || query.MaxPrice != nil {
		matches, err := srv.store.FilterByPrice(query.MinPrice, query.MaxPrice)
		if err != nil {
			return nil, errors.Wrap(err, "filter by price")
		}
		narrow(matches)
	}
	if query.MinSquareFootage != nil || query.MaxSquareFootage != nil {
		matches, err := srv.store.FilterBySquareFootage(query.MinSquareFootage, query.MaxSquareFootage)
		if err != nil {
			return nil, errors.Wrap(err, "filter by square footage")
		}
		narrow(matches)
	}

	return result, nil
}

// SaveSelection writes the properties with the given ids to the output document
func (srv *propertyService) SaveSelection(ctx context.Context, ids []uuid.UUID) (*usecase.SaveResult, error) {
	selected := srv.store.FindByIDs(ids)

	found := make(map[uuid.UUID]struct{}, len(selected))
	records := make([]map[string]any, 0, len(selected))
	for _, p := range selected {
		found[p.ID()] = struct{}{}
		records = append(records, entity.Dict(p))
	}

	var unknown []uuid.UUID
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			unknown = append(unknown, id)
		}
	}

	if err := srv.snapshots.WriteRecords(ctx, srv.opts.OutputKey, records); err != nil {
		return nil, errors.Wrap(err, "write selection")
	}
	srv.metrics.ObserveSelection(len(records))

	srv.log(ctx).Info("Selection saved",
		slog.String("key", srv.opts.OutputKey),
		slog.Int("saved", len(records)),
		slog.Int("unknown", len(unknown)),
	)

	return &usecase.SaveResult{
		Key:        srv.opts.OutputKey,
		Saved:      len(records),
		UnknownIDs: unknown,
	}, nil
}
