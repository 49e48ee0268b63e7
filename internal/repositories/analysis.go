package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go2tech/transcript-analyzer/internal/models"
)

type AnalysisRepository interface {
	Record(documentID uuid.UUID, result *models.AnalysisResult) (*models.Analysis, error)
	FindByID(id uuid.UUID) (*models.Analysis, error)
	FindByDocumentID(documentID uuid.UUID) ([]models.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Record persists one analysis outcome, success or failure, with the full
// result payload as JSON and the headline fields as columns.
func (r *analysisRepository) Record(documentID uuid.UUID, result *models.AnalysisResult) (*models.Analysis, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	analysis := &models.Analysis{
		ID:         uuid.New(),
		DocumentID: documentID,
		Status:     models.AnalysisFailed,
		ResultJSON: payload,
	}

	if result.Success {
		analysis.Status = models.AnalysisCompleted
		if result.StudentInfo != nil {
			analysis.StudentName = &result.StudentInfo.Name
			analysis.StudentID = &result.StudentInfo.StudentID
			analysis.CumulativeGPA = &result.StudentInfo.CumulativeGPA
		}
		totalCourses := len(result.Courses)
		analysis.TotalCourses = &totalCourses
		if len(result.JobRecommendations) > 0 {
			top := result.JobRecommendations[0]
			analysis.TopJobName = &top.JobNameEN
			analysis.TopJobScore = &top.OverallScore
		}
	} else {
		analysis.Message = &result.Message
	}

	if err := r.db.Create(analysis).Error; err != nil {
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}
	return analysis, nil
}

// FindByID implements AnalysisRepository.
func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis not found")
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

// FindByDocumentID returns all analyses recorded for a document, newest
// first.
func (r *analysisRepository) FindByDocumentID(documentID uuid.UUID) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Where("document_id = ?", documentID).
		Order("created_at DESC").
		Find(&analyses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find analyses: %w", err)
	}
	return analyses, nil
}
