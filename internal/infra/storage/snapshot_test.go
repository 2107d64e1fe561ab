package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	domainerrors "estate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func TestSnapshotStore_ReadRecords(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := NewSnapshotStore(bucket)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, bucket.WriteAll(ctx, "in.json", []byte(`[
		{"name": "Loft", "property_type": "Apartment", "price": 1500, "num_of_bedrooms": 2}
	]`), nil))

	records, err := store.ReadRecords(ctx, "in.json")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Loft", records[0]["name"])
	assert.Equal(t, json.Number("1500"), records[0]["price"])
	assert.Equal(t, json.Number("2"), records[0]["num_of_bedrooms"])
}

func TestSnapshotStore_ReadRecords_NotFound(t *testing.T) {
	store := NewSnapshotStore(memblob.OpenBucket(nil))

	_, err := store.ReadRecords(context.Background(), "missing.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSourceNotFound))
}

func TestSnapshotStore_ReadRecords_Malformed(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.WriteAll(ctx, "bad.json", []byte(`{"not": "an array"`), nil))

	_, err := NewSnapshotStore(bucket).ReadRecords(ctx, "bad.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLoadFailed))
}

func TestSnapshotStore_ReadRecords_TrailingData(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"trailing whitespace", "[{\"property_type\": \"House\"}]\n\n", false},
		{"trailing garbage", `[{"property_type": "House"}] trailing garbage {`, true},
		{"second array", `[{"property_type": "House"}] []`, true},
		{"second object", `[] {}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := memblob.OpenBucket(nil)
			require.NoError(t, bucket.WriteAll(ctx, "in.json", []byte(tt.payload), nil))

			records, err := NewSnapshotStore(bucket).ReadRecords(ctx, "in.json")
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Len(t, records, 1)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrLoadFailed))
			assert.Nil(t, records)
		})
	}
}

func TestSnapshotStore_FileBucketWithoutMetadata(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	bucket, err := OpenBucket(ctx, "file://"+filepath.ToSlash(dir)+"?metadata=skip")
	require.NoError(t, err)
	store := NewSnapshotStore(bucket)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.WriteRecords(ctx, "out.json", []map[string]any{{"name": "A"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"out.json"}, names)
}

func TestSnapshotStore_WriteRecords(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := NewSnapshotStore(bucket)

	err := store.WriteRecords(ctx, "out.json", []map[string]any{
		{"name": "Café & Bar <Zürich>", "price": 12.5},
	})
	require.NoError(t, err)

	data, err := bucket.ReadAll(ctx, "out.json")
	require.NoError(t, err)
	assert.Equal(t, "[\n    {\n        \"name\": \"Café & Bar <Zürich>\",\n        \"price\": 12.5\n    }\n]\n", string(data))

	attrs, err := bucket.Attributes(ctx, "out.json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", attrs.ContentType)
}

func TestSnapshotStore_WriteRecords_Empty(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)

	require.NoError(t, NewSnapshotStore(bucket).WriteRecords(ctx, "out.json", nil))

	data, err := bucket.ReadAll(ctx, "out.json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSnapshotStore_FileBucket(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	store := NewSnapshotStore(bucket)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.WriteRecords(ctx, "selection.json", []map[string]any{{"name": "A"}}))

	raw, err := os.ReadFile(filepath.Join(dir, "selection.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "A"`)
}
