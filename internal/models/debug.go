package models

// StudentInfoDebug traces the field parser's output for the debug endpoint.
type StudentInfoDebug struct {
	Found     bool   `json:"found"`
	Name      string `json:"name,omitempty"`
	StudentID string `json:"student_id,omitempty"`
	Major     string `json:"major,omitempty"`
	Degree    string `json:"degree,omitempty"`
	GPA       float64 `json:"gpa"`
	Credits   int     `json:"credits"`
}

// CoursesStats counts graded vs in-progress courses.
type CoursesStats struct {
	TotalCourses      int `json:"total_courses"`
	CoursesWithGrade  int `json:"courses_with_grade"`
	CoursesInProgress int `json:"courses_in_progress"`
}

// CourseCategorization traces the keyword categorizer for one course.
type CourseCategorization struct {
	CourseCode      string   `json:"course_code"`
	CourseName      string   `json:"course_name"`
	Grade           string   `json:"grade"`
	Credits         int      `json:"credits"`
	Categories      []string `json:"categories"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// SubjectMatchingDebug summarizes reference-subject matching coverage.
type SubjectMatchingDebug struct {
	MatchedSubjects      int `json:"matched_subjects"`
	TotalHardSkillsFound int `json:"total_hard_skills_found"`
	TotalSoftSkillsFound int `json:"total_soft_skills_found"`
}

// DebugInfo carries the raw extraction and parse traces of a debug run.
type DebugInfo struct {
	RawText               string                 `json:"raw_text"`
	TextLength            int                    `json:"text_length"`
	IsScanned             bool                   `json:"is_scanned"`
	StudentInfoDebug      *StudentInfoDebug      `json:"student_info_debug,omitempty"`
	ParsedCoursesRaw      []Course               `json:"parsed_courses_raw,omitempty"`
	CoursesStats          *CoursesStats          `json:"courses_stats,omitempty"`
	CategorizationDetails []CourseCategorization `json:"categorization_details,omitempty"`
	SubjectMatching       *SubjectMatchingDebug  `json:"subject_matching,omitempty"`
	Error                 string                 `json:"error,omitempty"`
}

// DebugSummary is the reduced summary block of a debug run.
type DebugSummary struct {
	TotalCourses  int     `json:"total_courses"`
	TotalCredits  int     `json:"total_credits"`
	CumulativeGPA float64 `json:"cumulative_gpa"`
}

// DebugResult is the diagnostic analysis outcome. JobSuggestions come from
// the legacy keyword categorizer, not the reference job matcher.
type DebugResult struct {
	Success        bool               `json:"success"`
	Message        string             `json:"message,omitempty"`
	StudentInfo    *StudentInfo       `json:"student_info,omitempty"`
	Courses        []Course           `json:"courses,omitempty"`
	DomainScores   map[string]float64 `json:"domain_scores,omitempty"`
	Strengths      []string           `json:"strengths,omitempty"`
	JobSuggestions []string           `json:"job_suggestions,omitempty"`
	Summary        *DebugSummary      `json:"summary,omitempty"`
	DebugInfo      *DebugInfo         `json:"debug_info,omitempty"`
}
