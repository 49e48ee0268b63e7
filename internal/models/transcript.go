package models

// Course is one course record parsed from a transcript. GradePoint is nil
// for grades outside the GPA scale (S, U, W, I and in-progress "IP").
type Course struct {
	CourseCode string   `json:"course_code"`
	CourseName string   `json:"course_name"`
	Credits    int      `json:"credits"`
	Grade      string   `json:"grade"`
	GradePoint *float64 `json:"grade_point"`
}

// StudentInfo holds the identity fields extracted from a transcript.
// Fields that could not be parsed are set to "N/A"; GPA and credits
// default to zero values.
type StudentInfo struct {
	Name          string  `json:"name"`
	StudentID     string  `json:"student_id"`
	Major         string  `json:"major"`
	Degree        string  `json:"degree"`
	CumulativeGPA float64 `json:"cumulative_gpa"`
	TotalCredits  int     `json:"total_credits"`
}
