// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"notes/internal/delivery/api/middleware"
	"notes/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	NoteHandler       *handler.NoteHandler
	CategoryHandler   *handler.CategoryHandler
	AttachmentHandler *handler.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	noteHandler       *handler.NoteHandler
	categoryHandler   *handler.CategoryHandler
	attachmentHandler *handler.AttachmentHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		noteHandler:       params.NoteHandler,
		categoryHandler:   params.CategoryHandler,
		attachmentHandler: params.AttachmentHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Everything under /api requires a bearer token
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	notesGroup := api.Group("/notes")
	{
		notesGroup.GET("", r.noteHandler.ListNotes)
		notesGroup.POST("", r.noteHandler.CreateNote)
		notesGroup.PUT("/:id", r.noteHandler.UpdateNote)
		notesGroup.DELETE("/:id", r.noteHandler.DeleteNote)

		notesGroup.POST("/:id/upload", r.attachmentHandler.Upload)
		notesGroup.GET("/:id/file", r.attachmentHandler.Download)
		notesGroup.DELETE("/:id/file", r.attachmentHandler.Remove)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory)
	}
}
