package storage

import (
	"context"
	"io"
)

// BlobStore is the external object store holding image binaries. Upload
// returns the durable URL of the stored object; the object name passed in
// doubles as the removal handle for Remove.
type BlobStore interface {
	Upload(ctx context.Context, objectName string, data io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}
