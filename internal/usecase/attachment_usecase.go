package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// UploadInput is a file received from the client. Content is read at most
// once and bounded by the configured upload size.
type UploadInput struct {
	FileName string
	Content  io.Reader
}

// UploadOutput describes the stored attachment.
type UploadOutput struct {
	FileURL  string
	FileName string
}

// AttachmentFile is an attachment opened for download. The caller closes Content.
type AttachmentFile struct {
	Content     io.ReadCloser
	ContentType string
	FileName    string
}

// AttachmentUsecase manages the single file attached to a note.
type AttachmentUsecase interface {
	// Upload attaches a file, replacing any previous one. A nil input means
	// the request carried no file; ownership is still checked first.
	Upload(ctx context.Context, userID, noteID uuid.UUID, input *UploadInput) (*UploadOutput, error)

	// Download opens the note's attachment.
	Download(ctx context.Context, userID, noteID uuid.UUID) (*AttachmentFile, error)

	// Remove deletes the attachment and clears the note's file fields.
	Remove(ctx context.Context, userID, noteID uuid.UUID) error
}
