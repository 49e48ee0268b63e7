package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	AnalysisCompleted AnalysisStatus = "completed"
	AnalysisFailed    AnalysisStatus = "failed"
)

// Analysis is one persisted analysis outcome. ResultJSON holds the full
// AnalysisResult payload; the scalar columns exist for listing and lookup
// without unmarshaling the blob.
type Analysis struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID    uuid.UUID      `gorm:"type:uuid;not null" json:"document_id"`
	Status        AnalysisStatus `gorm:"not null" json:"status"`
	Message       *string        `gorm:"type:text" json:"message,omitempty"`
	StudentName   *string        `gorm:"type:text" json:"student_name,omitempty"`
	StudentID     *string        `gorm:"type:text" json:"student_id,omitempty"`
	CumulativeGPA *float64       `gorm:"type:decimal(3,2)" json:"cumulative_gpa,omitempty"`
	TotalCourses  *int           `json:"total_courses,omitempty"`
	TopJobName    *string        `gorm:"type:text" json:"top_job_name,omitempty"`
	TopJobScore   *float64       `gorm:"type:decimal(4,1)" json:"top_job_score,omitempty"`
	ResultJSON    []byte         `gorm:"type:jsonb" json:"-"`
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
