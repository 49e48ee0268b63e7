package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go2tech/transcript-analyzer/internal/models"
	"go2tech/transcript-analyzer/internal/repositories"
	"go2tech/transcript-analyzer/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /transcript/upload: stores the PDF and creates
// the document record without analyzing it.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	doc, err := h.saveTranscript(c)
	if doc == nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":           "Transcript uploaded successfully",
		"document_id":       doc.ID.String(),
		"filename":          doc.Filename,
		"original_filename": doc.OriginalFileName,
	})
}

// saveTranscript validates, stores and records the uploaded transcript
// file. Shared with the one-shot analyze handler. A nil document means the
// error response has already been written.
func (h *UploadHandler) saveTranscript(c *fiber.Ctx) (*models.Document, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing transcript file. Upload a PDF as 'file'.",
		})
	}

	if file.Size > h.maxFileSize {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Transcript file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save transcript file: %v", err),
		})
	}

	doc := &models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save transcript record: %v", err),
		})
	}

	return doc, nil
}
