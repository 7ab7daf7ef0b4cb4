package handler

import (
	"log/slog"
	"mime"
	"net/http"

	"notes/internal/delivery/api/response"
	"notes/internal/errors"
	"notes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// AttachmentHandlerParams holds dependencies for AttachmentHandler, injected by Fx.
type AttachmentHandlerParams struct {
	fx.In

	AttachmentUC usecase.AttachmentUsecase
	Logger       *slog.Logger
}

// AttachmentHandler holds dependencies for note attachment handlers
type AttachmentHandler struct {
	attachmentUC usecase.AttachmentUsecase
	logger       *slog.Logger
}

// NewAttachmentHandler is the constructor for AttachmentHandler
func NewAttachmentHandler(params AttachmentHandlerParams) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentUC: params.AttachmentUC,
		logger:       params.Logger,
	}
}

// UploadResponse is returned after a successful upload
type UploadResponse struct {
	Success  bool   `json:"success"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

// Upload attaches the multipart "file" field to a note
func (h *AttachmentHandler) Upload(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	noteID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	// A missing part is passed on as a nil input so that ownership is checked first.
	var input *usecase.UploadInput
	fileHeader, err := c.FormFile(uploadFormField)
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		defer file.Close()

		input = &usecase.UploadInput{
			FileName: fileHeader.Filename,
			Content:  file,
		}
	}

	out, err := h.attachmentUC.Upload(c.Request().Context(), userID, noteID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &UploadResponse{
		Success:  true,
		FileURL:  out.FileURL,
		FileName: out.FileName,
	})
}

// Download streams the note's attachment
func (h *AttachmentHandler) Download(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	noteID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	file, err := h.attachmentUC.Download(c.Request().Context(), userID, noteID)
	if err != nil {
		return err
	}
	defer file.Content.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, contentType, file.Content)
}

// Remove detaches the file from a note
func (h *AttachmentHandler) Remove(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	noteID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.attachmentUC.Remove(c.Request().Context(), userID, noteID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}
