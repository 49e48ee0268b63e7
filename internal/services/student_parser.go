package services

import (
	"regexp"
	"strconv"
	"strings"

	"go2tech/transcript-analyzer/internal/models"
)

// UnknownField marks an identity field the parser could not extract.
const UnknownField = "N/A"

// Field patterns are ordered: the first pattern that matches anywhere in
// the text wins and later ones are never tried. Each list covers both the
// English and the Thai transcript layout, and every capture stops at the
// next structural boundary (label, newline or page break). Kept as data so
// layouts can be added without touching control flow.
var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Name[:\s]+(?:Mr\.|Mrs\.|Ms\.|Miss)?\s*([A-Za-zก-๙\s\-]+?)(?:\n|Date of Birth)`),
		regexp.MustCompile(`(?i)(?:Name|ชื่อ|ชื่อ-สกุล)[:\s]+([A-Za-zก-๙\s]+?)(?:\n|Student|รหัส|ID)`),
		regexp.MustCompile(`(?i)(?:Student Name|ชื่อนักศึกษา)[:\s]+([A-Za-zก-๙\s]+?)(?:\n|Student|รหัส|ID)`),
		regexp.MustCompile(`(?i)ชื่อ[:\s]*([ก-๙\s]+?)(?:\n|รหัส)`),
	}

	studentIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Student ID[:\s]*(\d{8,})`),
		regexp.MustCompile(`(?i)(?:Student ID|รหัสนักศึกษา|รหัส)[:\s]+(\d{8,})`),
		regexp.MustCompile(`(?i)(?:ID|StudentID)[:\s]+(\d{8,})`),
		regexp.MustCompile(`(?i)รหัส[:\s]*(\d{8,})`),
	}

	majorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Major\s+([A-Za-z\s\-]+?(?:\s*\([A-Za-z\s]+\))?)\s+COURSE`),
		regexp.MustCompile(`(?i)Major\s+([A-Za-z\s\-]+?(?:\s*\([A-Za-z\s]+\))?)\s*\n`),
		regexp.MustCompile(`(?i)(?:สาขา|สาขาวิชา)\s+([ก-๙\s\-]+?(?:\s*\([ก-๙\s]+\))?)\s*\n`),
	}

	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Degree\s+([A-Za-z\s\.]+?(?:\s*\([A-Za-z\s]+\))?)\s+Major`),
		regexp.MustCompile(`(?i)Degree\s+([A-Za-z\s\.]+?(?:\s*\([A-Za-z\s]+\))?)\s*\n`),
		regexp.MustCompile(`(?i)(?:ระดับ|ระดับการศึกษา)\s+([ก-๙\s\.]+?(?:\s*\([ก-๙\s]+\))?)\s*\n`),
	}

	gpaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Cumulative GPA[:\s]+([\d.]+)`),
		regexp.MustCompile(`(?i)(?:Cumulative GPA|CGPA|GPA|เกรดเฉลี่ย|เกรดเฉลี่ยสะสม)[:\s]+([\d.]+)`),
		regexp.MustCompile(`(?i)(?:Grade Point Average|Overall GPA)[:\s]+([\d.]+)`),
		regexp.MustCompile(`(?i)GPAX[:\s]+([\d.]+)`),
	}

	creditsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total number of credit earned[:\s]*(\d+)`),
		regexp.MustCompile(`(?i)(?:Total Credits|หน่วยกิตสะสม|หน่วยกิต|Credits)[:\s]+(\d+)`),
		regexp.MustCompile(`(?i)(?:Earned Credits|Credits Earned)[:\s]+(\d+)`),
		regexp.MustCompile(`(?i)หน่วยกิต[:\s]*(\d+)`),
	}
)

type StudentParserService interface {
	Parse(text string) *models.StudentInfo
}

type studentParserService struct{}

func NewStudentParserService() StudentParserService {
	return &studentParserService{}
}

// Parse extracts the student identity fields from the raw transcript text.
// It returns nil when neither name nor student id could be found; any other
// missing field degrades to its zero/sentinel value instead.
func (s *studentParserService) Parse(text string) *models.StudentInfo {
	name := firstMatch(namePatterns, text)
	studentID := firstMatch(studentIDPatterns, text)
	if name == "" && studentID == "" {
		return nil
	}

	major := firstMatch(majorPatterns, text)
	degree := firstMatch(degreePatterns, text)

	gpa := 0.0
	if raw := firstMatch(gpaPatterns, text); raw != "" {
		gpa, _ = strconv.ParseFloat(raw, 64)
	}
	credits := 0
	if raw := firstMatch(creditsPatterns, text); raw != "" {
		credits, _ = strconv.Atoi(raw)
	}

	return &models.StudentInfo{
		Name:          orUnknown(name),
		StudentID:     orUnknown(studentID),
		Major:         orUnknown(major),
		Degree:        orUnknown(degree),
		CumulativeGPA: gpa,
		TotalCredits:  credits,
	}
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func orUnknown(value string) string {
	if value == "" {
		return UnknownField
	}
	return value
}
