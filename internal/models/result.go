package models

import "go2tech/transcript-analyzer/internal/refdata"

// CourseContribution records one course's contribution to a skill score.
type CourseContribution struct {
	CourseCode string  `json:"course_code"`
	CourseName string  `json:"course_name"`
	Grade      string  `json:"grade"`
	GradeScore float64 `json:"grade_score"`
	SkillLevel int     `json:"skill_level"`
	SkillScore float64 `json:"skill_score"`
}

// SkillScore is the aggregated score for one skill across all courses
// that teach it.
type SkillScore struct {
	SkillID             string               `json:"skill_id"`
	SkillNameEN         string               `json:"skill_name_en"`
	SkillNameTH         string               `json:"skill_name_th"`
	TotalScore          float64              `json:"total_score"`
	MaxScore            float64              `json:"max_score"`
	Percentage          float64              `json:"percentage"`
	Level               int                  `json:"level"`
	LevelDescriptionEN  string               `json:"level_description_en"`
	LevelDescriptionTH  string               `json:"level_description_th"`
	ContributingCourses []CourseContribution `json:"contributing_courses"`
}

// SkillScores groups hard and soft skill scores.
type SkillScores struct {
	HardSkills []SkillScore `json:"hard_skills"`
	SoftSkills []SkillScore `json:"soft_skills"`
}

// UnmatchedCourse is a parsed course that could not be resolved to any
// reference subject. Kept in the output for transparency.
type UnmatchedCourse struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Credits    int    `json:"credits"`
	Grade      string `json:"grade"`
}

// Skill match statuses produced by the job matcher.
const (
	StatusExceeded = "exceeded"
	StatusMet      = "met"
	StatusBelow    = "below"
	StatusMissing  = "missing"
)

// SkillMatchDetail compares one required skill against the student's level.
type SkillMatchDetail struct {
	SkillID        string  `json:"skill_id"`
	SkillNameEN    string  `json:"skill_name_en"`
	RequiredLevel  int     `json:"required_level"`
	UserLevel      int     `json:"user_level"`
	UserPercentage float64 `json:"user_percentage"`
	Status         string  `json:"status"`
	Gap            int     `json:"gap"`
	Score          float64 `json:"score"`
}

// MissingSkill is a job requirement absent from the student's profile.
type MissingSkill struct {
	SkillID       string `json:"skill_id"`
	SkillNameEN   string `json:"skill_name_en"`
	RequiredLevel int    `json:"required_level"`
}

// JobMatchStats summarizes requirement coverage for one job.
type JobMatchStats struct {
	TotalRequiredHardSkills int `json:"total_required_hard_skills"`
	MatchedHardSkills       int `json:"matched_hard_skills"`
	TotalRequiredSoftSkills int `json:"total_required_soft_skills"`
	MatchedSoftSkills       int `json:"matched_soft_skills"`
}

// JobMatch is the fit result for one reference job. OverallScore equals
// HardSkillsScore: soft skills are scored and exposed here but do not
// influence ranking.
type JobMatch struct {
	JobID             string               `json:"job_id"`
	JobNameEN         string               `json:"job_name_en"`
	JobField          *refdata.JobGroupRef `json:"job_field"`
	JobGroup          *refdata.JobGroupRef `json:"job_group"`
	OverallScore      float64              `json:"overall_score"`
	HardSkillsScore   float64              `json:"hard_skills_score"`
	SoftSkillsScore   float64              `json:"soft_skills_score"`
	HardSkillDetails  []SkillMatchDetail   `json:"hard_skill_details"`
	SoftSkillDetails  []SkillMatchDetail   `json:"soft_skill_details"`
	MissingHardSkills []MissingSkill       `json:"missing_hard_skills"`
	MissingSoftSkills []MissingSkill       `json:"missing_soft_skills"`
	Stats             JobMatchStats        `json:"stats"`
}

// Summary is the roll-up block of a successful analysis.
type Summary struct {
	TotalCourses    int     `json:"total_courses"`
	TotalCredits    int     `json:"total_credits"`
	CumulativeGPA   float64 `json:"cumulative_gpa"`
	TotalHardSkills int     `json:"total_hard_skills"`
	TotalSoftSkills int     `json:"total_soft_skills"`
	MatchedSubjects int     `json:"matched_subjects"`
}

// AnalysisResult is the discriminated outcome of one analysis. On failure
// only Success and Message are set; on success Message is empty and every
// other field is populated.
type AnalysisResult struct {
	Success            bool              `json:"success"`
	Message            string            `json:"message,omitempty"`
	StudentInfo        *StudentInfo      `json:"student_info,omitempty"`
	Courses            []Course          `json:"courses,omitempty"`
	SkillScores        *SkillScores      `json:"skill_scores,omitempty"`
	JobRecommendations []JobMatch        `json:"job_recommendations,omitempty"`
	TopSkills          []SkillScore      `json:"top_skills,omitempty"`
	UnmatchedCourses   []UnmatchedCourse `json:"unmatched_courses,omitempty"`
	Summary            *Summary          `json:"summary,omitempty"`
}
