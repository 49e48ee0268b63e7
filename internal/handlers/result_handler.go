package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go2tech/transcript-analyzer/internal/models"
	"go2tech/transcript-analyzer/internal/repositories"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetResult handles GET /transcript/result/:id, returning a
// previously recorded analysis outcome.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(analysis.ResultJSON, &result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stored analysis result is unreadable",
		})
	}

	return c.JSON(fiber.Map{
		"id":          analysis.ID.String(),
		"document_id": analysis.DocumentID.String(),
		"status":      string(analysis.Status),
		"created_at":  analysis.CreatedAt,
		"result":      result,
	})
}
