package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for persisting uploaded files.
// This abstracts where files land (local disk, object storage) from the use cases.
type FileStorage interface {
	// Save writes the content under the given directory and file name and
	// returns the stored path relative to the storage root.
	Save(ctx context.Context, dir, name string, content io.Reader) (string, error)

	// Remove deletes a previously stored file. Missing files are not an error.
	Remove(ctx context.Context, path string) error
}
