package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/infra/metrics"
	"estate/internal/infra/persistence/memory"
	"estate/internal/infra/storage"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const sourceDocument = `[
	{"name": "Oak House", "property_type": "House", "location": "Location A", "price": 2000, "square_footage": 150,
	 "num_of_bedrooms": 3, "num_of_bathrooms": 2, "num_of_floors": 2},
	{"name": "City Flat", "property_type": "Apartment", "location": "Location B", "price": 1500, "square_footage": 60,
	 "num_of_bedrooms": 1, "num_of_bathrooms": 1, "floor_number": 5},
	{"name": "River Flat", "property_type": "apartment", "location": "location a", "price": 1800, "square_footage": 80,
	 "num_of_bedrooms": 2, "num_of_bathrooms": 1, "floor_number": 2},
	{"name": "Corner Shop", "property_type": "Commercial Space", "location": "Location C", "price": 5000, "square_footage": 300,
	 "business_type": "Retail"},
	{"name": "Old Barn", "property_type": "Barn", "location": "Location D", "price": 100, "square_footage": 500}
]`

// propertyServiceFixtures holds all test dependencies for property service tests.
type propertyServiceFixtures struct {
	service usecase.PropertyUsecase
	store   repository.PropertyRepository
	bucket  *blob.Bucket
	metrics *metrics.Metrics
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := memory.NewPropertyStore(logger)
	m := metrics.New(prometheus.NewRegistry())

	service := NewPropertyService(PropertyServiceParams{
		Store:     store,
		Snapshots: storage.NewSnapshotStore(bucket),
		Metrics:   m,
		Options:   PropertyServiceOptions{InputKey: "properties.json", OutputKey: "selection.json"},
		Logger:    logger,
	})

	return propertyServiceFixtures{
		service: service,
		store:   store,
		bucket:  bucket,
		metrics: m,
	}
}

func loadedService(t *testing.T) propertyServiceFixtures {
	t.Helper()

	fx := createTestPropertyService(t)
	require.NoError(t, fx.bucket.WriteAll(context.Background(), "properties.json", []byte(sourceDocument), nil))

	_, err := fx.service.LoadProperties(context.Background())
	require.NoError(t, err)

	return fx
}

func propertyNames(props []entity.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.Name()
	}

	return out
}

func float(v float64) *float64 { return &v }

func TestPropertyService_LoadProperties(t *testing.T) {
	fx := createTestPropertyService(t)
	require.NoError(t, fx.bucket.WriteAll(context.Background(), "properties.json", []byte(sourceDocument), nil))

	report, err := fx.service.LoadProperties(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Loaded)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "Barn", report.Skipped[0].PropertyType)
	assert.Equal(t, 4, fx.store.Len())
	assert.Equal(t, 4.0, testutil.ToFloat64(fx.metrics.PropertiesLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.PropertiesSkipped))
	assert.Equal(t, 4.0, testutil.ToFloat64(fx.metrics.StoredProperties))
}

func TestPropertyService_LoadProperties_SourceNotFound(t *testing.T) {
	fx := createTestPropertyService(t)

	_, err := fx.service.LoadProperties(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSourceNotFound))
	assert.Zero(t, fx.store.Len())
}

func TestPropertyService_LoadProperties_MissingField(t *testing.T) {
	fx := createTestPropertyService(t)
	doc := `[
		{"name": "Shop", "property_type": "Commercial Space", "location": "X", "price": 1, "square_footage": 1, "business_type": "Bakery"},
		{"name": "Flat", "property_type": "Apartment", "location": "X", "price": 1, "square_footage": 1}
	]`
	require.NoError(t, fx.bucket.WriteAll(context.Background(), "properties.json", []byte(doc), nil))

	report, err := fx.service.LoadProperties(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, 1, report.Loaded)
	assert.Equal(t, []string{"Shop"}, propertyNames(fx.store.All()))
}

func TestPropertyService_Queries(t *testing.T) {
	fx := loadedService(t)
	ctx := context.Background()

	assert.Equal(t, []string{"Oak House", "City Flat", "River Flat", "Corner Shop"},
		propertyNames(fx.service.ListProperties(ctx)))

	assert.Equal(t, []string{"Oak House", "River Flat"},
		propertyNames(fx.service.FilterByLocation(ctx, "LOCATION A")))

	assert.Equal(t, []string{"City Flat", "River Flat"},
		propertyNames(fx.service.FilterByPropertyType(ctx, "apartment")))

	byPrice, err := fx.service.FilterByPrice(ctx, float(1600), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Oak House", "River Flat", "Corner Shop"}, propertyNames(byPrice))

	byFootage, err := fx.service.FilterBySquareFootage(ctx, float(70), float(150))
	require.NoError(t, err)
	assert.Equal(t, []string{"Oak House", "River Flat"}, propertyNames(byFootage))

	assert.Equal(t, []string{"Corner Shop", "Oak House", "River Flat", "City Flat"},
		propertyNames(fx.service.SortProperties(ctx, "price", "descending")))

	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Queries.WithLabelValues("filter_by_price", "ok")))
}

func TestPropertyService_FilterByPrice_EmptyStore(t *testing.T) {
	fx := createTestPropertyService(t)

	_, err := fx.service.FilterByPrice(context.Background(), float(0), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCollection))
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.Queries.WithLabelValues("filter_by_price", "error")))
}

func TestPropertyService_Search(t *testing.T) {
	fx := loadedService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query usecase.PropertyQuery
		want  []string
	}{
		{"no filters", usecase.PropertyQuery{}, []string{"Oak House", "City Flat", "River Flat", "Corner Shop"}},
		{"location and type", usecase.PropertyQuery{Location: "location a", PropertyType: "Apartment"}, []string{"River Flat"}},
		{"price range sorted", usecase.PropertyQuery{MinPrice: float(1500), MaxPrice: float(2000), SortBy: "price", Order: "ascending"},
			[]string{"City Flat", "River Flat", "Oak House"}},
		{"footage with open maximum", usecase.PropertyQuery{MinSquareFootage: float(100)}, []string{"Oak House", "Corner Shop"}},
		{"no match", usecase.PropertyQuery{Location: "Nowhere"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fx.service.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, propertyNames(got))
		})
	}
}

func TestPropertyService_SaveSelection(t *testing.T) {
	fx := loadedService(t)
	ctx := context.Background()
	all := fx.store.All()
	missing := uuid.New()

	result, err := fx.service.SaveSelection(ctx, []uuid.UUID{all[3].ID(), missing, all[1].ID()})
	require.NoError(t, err)

	assert.Equal(t, "selection.json", result.Key)
	assert.Equal(t, 2, result.Saved)
	assert.Equal(t, []uuid.UUID{missing}, result.UnknownIDs)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.SelectionsSaved))

	raw, err := fx.bucket.ReadAll(ctx, "selection.json")
	require.NoError(t, err)

	var saved []map[string]any
	require.NoError(t, json.Unmarshal(raw, &saved))
	require.Len(t, saved, 2)
	assert.Equal(t, "Corner Shop", saved[0]["name"])
	assert.Equal(t, "Retail", saved[0]["business_type"])
	assert.Equal(t, "City Flat", saved[1]["name"])
	assert.NotContains(t, saved[1], "id")
}

func TestPropertyService_SaveSelection_ReloadsIntoEquivalentProperties(t *testing.T) {
	fx := loadedService(t)
	ctx := context.Background()

	ids := make([]uuid.UUID, 0, fx.store.Len())
	for _, p := range fx.store.All() {
		ids = append(ids, p.ID())
	}
	_, err := fx.service.SaveSelection(ctx, ids)
	require.NoError(t, err)

	raw, err := fx.bucket.ReadAll(ctx, "selection.json")
	require.NoError(t, err)

	reloaded := createTestPropertyService(t)
	require.NoError(t, reloaded.bucket.WriteAll(ctx, "properties.json", raw, nil))
	report, err := reloaded.service.LoadProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Loaded)

	for i, p := range reloaded.store.All() {
		assert.Equal(t, entity.Dict(fx.store.All()[i]), entity.Dict(p))
	}
}
