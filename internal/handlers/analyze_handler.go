package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go2tech/transcript-analyzer/internal/models"
	"go2tech/transcript-analyzer/internal/repositories"
	"go2tech/transcript-analyzer/internal/services"
)

type AnalyzeHandler struct {
	uploadHandler *UploadHandler
	docRepo       repositories.DocumentRepository
	analysisRepo  repositories.AnalysisRepository
	analyzer      services.AnalyzerService
}

func NewAnalyzeHandler(
	uploadHandler *UploadHandler,
	docRepo repositories.DocumentRepository,
	analysisRepo repositories.AnalysisRepository,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploadHandler: uploadHandler,
		docRepo:       docRepo,
		analysisRepo:  analysisRepo,
		analyzer:      analyzer,
	}
}

// HandleAnalyze handles POST /transcript/analyze: upload and analyze in
// one step, synchronously in the request.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	doc, err := h.uploadHandler.saveTranscript(c)
	if doc == nil {
		return err
	}

	result := h.analyzer.Analyze(doc.FilePath)
	analysis, err := h.analysisRepo.Record(doc.ID, result)
	if err != nil {
		// The analysis itself succeeded; losing the record is not worth
		// failing the request over.
		log.Printf("⚠️  Failed to record analysis for document %s: %v\n", doc.ID, err)
	}

	response := fiber.Map{
		"document_id": doc.ID.String(),
		"result":      result,
	}
	if analysis != nil {
		response["analysis_id"] = analysis.ID.String()
	}
	return c.JSON(response)
}

// HandleAnalyzeByID handles GET /transcript/analyze/:id: analyze a
// previously uploaded document.
func (h *AnalyzeHandler) HandleAnalyzeByID(c *fiber.Ctx) error {
	doc, ok := h.findDocument(c)
	if !ok {
		return nil
	}

	result := h.analyzer.Analyze(doc.FilePath)
	analysis, err := h.analysisRepo.Record(doc.ID, result)
	if err != nil {
		log.Printf("⚠️  Failed to record analysis for document %s: %v\n", doc.ID, err)
	}

	response := fiber.Map{
		"document_id": doc.ID.String(),
		"result":      result,
	}
	if analysis != nil {
		response["analysis_id"] = analysis.ID.String()
	}
	return c.JSON(response)
}

// HandleAnalyzeDebug handles POST /transcript/analyze/:id/debug. Debug
// runs are for tooling and support; they are not persisted.
func (h *AnalyzeHandler) HandleAnalyzeDebug(c *fiber.Ctx) error {
	doc, ok := h.findDocument(c)
	if !ok {
		return nil
	}

	return c.JSON(h.analyzer.AnalyzeDebug(doc.FilePath))
}

// findDocument resolves the :id route param to a document record, writing
// the error response itself when resolution fails.
func (h *AnalyzeHandler) findDocument(c *fiber.Ctx) (*models.Document, bool) {
	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID format",
		})
		return nil, false
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
		return nil, false
	}
	return doc, true
}
