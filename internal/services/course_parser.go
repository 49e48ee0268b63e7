package services

import (
	"regexp"
	"strconv"
	"strings"

	"go2tech/transcript-analyzer/internal/models"
)

// GradeInProgress is the sentinel grade assigned to course records found
// without a grade token.
const GradeInProgress = "IP"

// gradePoints maps the GPA-scale grades to their grade points. Grades
// outside this table (S, U, W, I, IP) carry no grade point and are
// excluded from weighted scoring.
var gradePoints = map[string]float64{
	"A":  4.0,
	"B+": 3.5,
	"B":  3.0,
	"C+": 2.5,
	"C":  2.0,
	"D+": 1.5,
	"D":  1.0,
	"F":  0.0,
}

// GradePoint returns the numeric grade point for a grade token, or nil for
// non-GPA grades.
func GradePoint(grade string) *float64 {
	if point, ok := gradePoints[grade]; ok {
		return &point
	}
	return nil
}

// Course records have the shape <8-digit code> <UPPERCASE NAME> <credit>
// and optionally a trailing grade token. The graded pattern runs first; the
// ungraded pattern picks up in-progress courses the first pass did not
// claim. Trailing boundaries are consumed rather than asserted because RE2
// has no lookahead.
var (
	gradedCoursePattern = regexp.MustCompile(
		`(\d{8})\s+([A-Z][A-Z0-9\s&\-./()]+?)\s+(\d)\s+(IP|A|B\+|B|C\+|C|D\+|D|F|S|U|W|I)(?:\s|$)`)
	ungradedCoursePattern = regexp.MustCompile(
		`(\d{8})\s+([A-Z][A-Z0-9\s&\-./()]+?)\s+(\d)\s*(?:\n|GPS|$)`)
)

type CourseParserService interface {
	Parse(text string) []models.Course
}

type courseParserService struct{}

func NewCourseParserService() CourseParserService {
	return &courseParserService{}
}

// Parse scans the transcript text for course records, unique by course
// code with the first occurrence winning. Graded records always take
// precedence over an ungraded match of the same code.
func (c *courseParserService) Parse(text string) []models.Course {
	var courses []models.Course
	seen := make(map[string]bool)

	for _, m := range gradedCoursePattern.FindAllStringSubmatch(text, -1) {
		code := m[1]
		name := strings.TrimSpace(m[2])
		grade := m[4]
		if isSummaryLine(name) {
			continue
		}
		if seen[code] {
			continue
		}
		seen[code] = true

		credits, _ := strconv.Atoi(m[3])
		courses = append(courses, models.Course{
			CourseCode: code,
			CourseName: name,
			Credits:    credits,
			Grade:      grade,
			GradePoint: GradePoint(grade),
		})
	}

	for _, m := range ungradedCoursePattern.FindAllStringSubmatch(text, -1) {
		code := m[1]
		name := strings.TrimSpace(m[2])
		if seen[code] || isSummaryLine(name) {
			continue
		}
		seen[code] = true

		credits, _ := strconv.Atoi(m[3])
		courses = append(courses, models.Course{
			CourseCode: code,
			CourseName: name,
			Credits:    credits,
			Grade:      GradeInProgress,
			GradePoint: nil,
		})
	}

	return courses
}

// isSummaryLine rejects GPS/GPA summary rows that the record patterns
// occasionally over-match.
func isSummaryLine(name string) bool {
	return strings.Contains(name, "GPS") || strings.Contains(name, "GPA")
}
