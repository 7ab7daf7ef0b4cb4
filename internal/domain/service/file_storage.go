package service

import (
	"context"
	"io"
)

// FileStorage abstracts the blob store holding note attachments.
type FileStorage interface {
	// Put writes data under key with the given content type.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Open returns a reader for the object and its content type. A missing
	// object fails with domainerrors.ErrAttachmentNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the client-facing URL for the object, or "" when objects
	// are only reachable through the API.
	URL(key string) string
}
