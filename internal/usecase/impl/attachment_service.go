package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"notes/config"
	deliverycontext "notes/internal/delivery/context"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/domain/service"
	"notes/internal/errors"
	"notes/internal/usecase"
	"notes/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMaxUploadSize  int64 = 10 << 20
	defaultAttachmentName       = "attachment"
)

// attachmentService implements the AttachmentUsecase interface.
type attachmentService struct {
	noteRepo      repository.NoteRepository
	storage       service.FileStorage
	maxUploadSize int64
	allowedTypes  []string
	keyPrefix     string
	logger        *slog.Logger
}

// AttachmentServiceParams holds dependencies for AttachmentService, injected by Fx.
type AttachmentServiceParams struct {
	fx.In

	NoteRepo repository.NoteRepository
	Storage  service.FileStorage
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAttachmentService is the constructor for attachmentService.
func NewAttachmentService(params AttachmentServiceParams) usecase.AttachmentUsecase {
	srv := &attachmentService{
		noteRepo:      params.NoteRepo,
		storage:       params.Storage,
		maxUploadSize: defaultMaxUploadSize,
		logger:        params.Logger,
	}

	if params.Config != nil && params.Config.Storage != nil {
		if params.Config.Storage.MaxUploadSize > 0 {
			srv.maxUploadSize = params.Config.Storage.MaxUploadSize
		}
		srv.allowedTypes = params.Config.Storage.AllowedContentTypes
		srv.keyPrefix = params.Config.Storage.KeyPrefix
	}

	return srv
}

func (srv *attachmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores the file and points the note at it. The previous attachment,
// if any, is deleted once the note references the new one.
func (srv *attachmentService) Upload(ctx context.Context, userID, noteID uuid.UUID, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	note, err := loadOwnedNote(ctx, srv.noteRepo, userID, noteID)
	if err != nil {
		return nil, err
	}

	if input == nil || input.Content == nil {
		return nil, domainerrors.ErrFileMissing
	}

	data, err := io.ReadAll(io.LimitReader(input.Content, srv.maxUploadSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrFileMissing
	}
	if int64(len(data)) > srv.maxUploadSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails("limit is " + util.FormatBytes(srv.maxUploadSize))
	}

	// The declared part type is ignored; only the bytes decide.
	detected := mimetype.Detect(data)
	if !mimetype.EqualsAny(detected.String(), srv.allowedTypes...) {
		return nil, domainerrors.ErrFileTypeNotAllowed.WithDetails("detected " + detected.String())
	}

	key := path.Join(srv.keyPrefix, note.ID.String(), uuid.NewString()+detected.Extension())
	if err := srv.storage.Put(ctx, key, data, detected.String()); err != nil {
		return nil, errors.Wrap(err, "failed to store attachment")
	}

	previousKey := note.FileKey
	note.FileKey = key
	note.FileName = attachmentName(input.FileName, detected.Extension())
	note.FileURL = srv.fileURL(note.ID, key)

	if err := srv.noteRepo.Update(ctx, note); err != nil {
		srv.discard(ctx, key)

		return nil, errors.Wrap(err, "failed to attach file to note")
	}

	if previousKey != "" && previousKey != key {
		srv.discard(ctx, previousKey)
	}

	srv.log(ctx).Info("Attachment uploaded",
		slog.String("noteID", note.ID.String()),
		slog.String("contentType", detected.String()),
		slog.Int("size", len(data)))

	return &usecase.UploadOutput{FileURL: note.FileURL, FileName: note.FileName}, nil
}

// Download opens the note's attachment for streaming.
func (srv *attachmentService) Download(ctx context.Context, userID, noteID uuid.UUID) (*usecase.AttachmentFile, error) {
	note, err := loadOwnedNote(ctx, srv.noteRepo, userID, noteID)
	if err != nil {
		return nil, err
	}

	if !note.HasAttachment() {
		return nil, domainerrors.ErrAttachmentNotFound
	}

	content, contentType, err := srv.storage.Open(ctx, note.FileKey)
	if err != nil {
		return nil, err
	}

	return &usecase.AttachmentFile{
		Content:     content,
		ContentType: contentType,
		FileName:    note.FileName,
	}, nil
}

// Remove detaches the file from the note. Removing from a note without an
// attachment succeeds.
func (srv *attachmentService) Remove(ctx context.Context, userID, noteID uuid.UUID) error {
	note, err := loadOwnedNote(ctx, srv.noteRepo, userID, noteID)
	if err != nil {
		return err
	}

	if !note.HasAttachment() && note.FileURL == "" {
		return nil
	}

	key := note.FileKey
	note.ClearAttachment()
	if err := srv.noteRepo.Update(ctx, note); err != nil {
		return errors.Wrap(err, "failed to detach file from note")
	}

	if key != "" {
		srv.discard(ctx, key)
	}

	return nil
}

// fileURL prefers the public storage URL and falls back to the download route.
func (srv *attachmentService) fileURL(noteID uuid.UUID, key string) string {
	if url := srv.storage.URL(key); url != "" {
		return url
	}

	return "/api/notes/" + noteID.String() + "/file"
}

// discard deletes a blob that is no longer referenced. Failures are logged
// and leave an orphaned blob.
func (srv *attachmentService) discard(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete attachment blob", slog.String("key", key), slog.Any("error", err))
	}
}

// attachmentName strips any client-side directory from the uploaded name.
func attachmentName(name, ext string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return defaultAttachmentName + ext
	}

	return name
}
