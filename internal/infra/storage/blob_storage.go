// Package storage keeps note attachments in a gocloud.dev bucket. The
// driver is chosen by the bucket URL scheme (file, mem, s3, gs).
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"notes/config"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/lifecycle"
	"notes/internal/domain/service"
	"notes/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens storage.bucketUrl and ties the bucket to the app lifecycle.
func NewBucket(params Params) (*blob.Bucket, error) {
	bucketURL := params.Config.Storage.BucketURL

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", redactBucketURL(bucketURL))
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			ok, err := bucket.IsAccessible(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to reach attachment bucket")
			}
			if !ok {
				return errors.Errorf("attachment bucket %q is not accessible", redactBucketURL(bucketURL))
			}

			params.Logger.Info("Attachment bucket ready", slog.String("bucket", redactBucketURL(bucketURL)))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// blobStorage implements service.FileStorage on top of a *blob.Bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage is the constructor for blobStorage.
func NewBlobStorage(bucket *blob.Bucket, cfg *config.Config) service.FileStorage {
	base := ""
	if cfg != nil && cfg.Storage != nil {
		base = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: base,
	}
}

// Put writes data under key.
func (s *blobStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return nil
}

// Open returns a reader for key. The caller closes it.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrAttachmentNotFound
		}

		return nil, "", domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return reader, reader.ContentType(), nil
}

// Delete removes key. A missing object counts as deleted.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return nil
}

// URL returns publicBaseURL/key, or "" when no public base is configured.
func (s *blobStorage) URL(key string) string {
	if s.publicBaseURL == "" {
		return ""
	}

	return s.publicBaseURL + "/" + key
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}

	return raw
}
