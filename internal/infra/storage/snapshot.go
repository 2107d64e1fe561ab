// Package storage reads and writes property snapshots in an object storage
// bucket. Any gocloud.dev/blob driver works; file and in-memory buckets are
// registered here.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

// SnapshotStore moves property records in and out of a bucket as JSON arrays.
type SnapshotStore struct {
	bucket *blob.Bucket
}

// OpenBucket opens the bucket behind url, e.g. "file:///var/lib/estate" or "mem://".
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	return bucket, nil
}

// NewSnapshotStore wraps an opened bucket.
func NewSnapshotStore(bucket *blob.Bucket) *SnapshotStore {
	return &SnapshotStore{bucket: bucket}
}

// ReadRecords decodes the JSON array stored under key. Numbers are kept as
// json.Number so integer fields can be told apart from fractional ones.
func (s *SnapshotStore) ReadRecords(ctx context.Context, key string) ([]entity.Record, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrSourceNotFound.WithDetails(key)
		}

		return nil, domainerrors.NewStorageError(err, "read "+key)
	}

	var records []entity.Record
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&records); err != nil {
		return nil, domainerrors.ErrLoadFailed.WithDetails(errors.Wrapf(err, "decode %s", key).Error())
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, domainerrors.ErrLoadFailed.WithDetails(fmt.Sprintf("decode %s: unexpected data after the top-level array", key))
	}

	return records, nil
}

// WriteRecords stores records under key as an indented JSON array. Non-ASCII
// and HTML characters are written literally.
func (s *SnapshotStore) WriteRecords(ctx context.Context, key string, records []map[string]any) error {
	if records == nil {
		records = []map[string]any{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := s.bucket.WriteAll(ctx, key, buf.Bytes(), &blob.WriterOptions{ContentType: contentTypeJSON}); err != nil {
		return domainerrors.NewStorageError(err, "write "+key)
	}

	return nil
}

// Close releases the bucket.
func (s *SnapshotStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
