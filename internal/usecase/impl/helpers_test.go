package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"notes/config"
	"notes/internal/domain/repository"
	mockRepo "notes/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test-secret"},
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Storage: &config.StorageConfig{
			KeyPrefix:     "notes",
			MaxUploadSize: 1 << 10,
			AllowedContentTypes: []string{
				"image/jpeg",
				"image/png",
				"image/gif",
				"application/pdf",
			},
		},
	}
}

// expectTransaction makes the transaction manager run its callback against factory.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func strPtr(s string) *string { return &s }
