package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/app/services"
	"github.com/drivingschool/admin/internal/middleware"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
)

const (
	documentsPage = "documents.html"

	// uploadFormField is the multipart field of the upload form
	uploadFormField = "files"
	maxUploadMemory = 32 << 20
)

// DocumentController serves the student document manager
type DocumentController struct {
	service *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(service *services.DocumentService) *DocumentController {
	return &DocumentController{service: service}
}

// List mounts the document manager
func (c *DocumentController) List(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Documents
	_ = c.service.Load(ctx.Request.Context(), screen)
	if gone(ctx) {
		return
	}
	c.render(ctx, http.StatusOK)
}

// Upload forwards the selected files to the student's document record
func (c *DocumentController) Upload(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Documents

	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		notify(ctx, models.Failure("Invalid student."))
		c.render(ctx, http.StatusBadRequest)
		return
	}

	parts, closeAll, err := formFiles(ctx)
	if err != nil {
		notify(ctx, models.Failure("Failed to read the uploaded files."))
		c.render(ctx, http.StatusBadRequest)
		return
	}
	defer closeAll()

	n, err := c.service.Upload(ctx.Request.Context(), screen, studentID, parts)
	if gone(ctx) {
		return
	}
	notify(ctx, n)
	c.render(ctx, statusFor(err))
}

// formFiles opens every file posted under uploadFormField.
// A request without files yields no parts and no error.
func formFiles(ctx *gin.Context) ([]apiclient.FilePart, func(), error) {
	closers := []io.Closer{}
	closeAll := func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}

	if err := ctx.Request.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, closeAll, fmt.Errorf("parse multipart form: %w", err)
	}
	if ctx.Request.MultipartForm == nil {
		return nil, closeAll, nil
	}

	headers := ctx.Request.MultipartForm.File[uploadFormField]
	parts := make([]apiclient.FilePart, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		closers = append(closers, f)
		parts = append(parts, apiclient.FilePart{Filename: fh.Filename, Content: f})
	}
	return parts, closeAll, nil
}

func (c *DocumentController) render(ctx *gin.Context, status int) {
	page(ctx, status, documentsPage, "Student Documents", "documents", gin.H{
		"Screen": &middleware.SessionState(ctx).Documents,
	})
}
