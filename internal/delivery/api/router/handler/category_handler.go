package handler

import (
	"log/slog"
	"net/http"

	"notes/internal/delivery/api/response"
	"notes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler holds dependencies for category handlers
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

// ListCategories returns the caller's categories with note counts
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	categories, err := h.categoryUC.ListCategories(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories)
}

// CreateCategory handles category creation
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), userID, req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, category)
}
