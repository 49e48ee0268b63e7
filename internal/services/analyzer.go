package services

import (
	"fmt"
	"sort"

	"go2tech/transcript-analyzer/internal/models"
)

// Failure messages for the recoverable analysis outcomes.
const (
	MsgScannedPDF      = "This PDF appears to be scanned. Scanned PDFs are not supported yet."
	MsgNoStudentInfo   = "Unable to parse student information from transcript."
	MsgNoCoursesParsed = "Unable to parse courses from transcript."
)

const (
	topSkillsCount = 5
	topJobsCount   = 10
)

type AnalyzerService interface {
	Analyze(pdfPath string) *models.AnalysisResult
	AnalyzeDebug(pdfPath string) *models.DebugResult
}

type analyzerService struct {
	pdfParser     PDFParserService
	studentParser StudentParserService
	courseParser  CourseParserService
	matcher       SubjectMatcherService
	scorer        SkillScorerService
	jobMatcher    JobMatcherService
}

func NewAnalyzerService(
	pdfParser PDFParserService,
	studentParser StudentParserService,
	courseParser CourseParserService,
	matcher SubjectMatcherService,
	scorer SkillScorerService,
	jobMatcher JobMatcherService,
) AnalyzerService {
	return &analyzerService{
		pdfParser:     pdfParser,
		studentParser: studentParser,
		courseParser:  courseParser,
		matcher:       matcher,
		scorer:        scorer,
		jobMatcher:    jobMatcher,
	}
}

// Analyze runs the full pipeline on one transcript: extract text, parse
// identity and course records, score skills against the reference data and
// rank jobs. Every stage that fails short-circuits into a failure result
// with a plain-language reason; a success result is always fully populated.
func (a *analyzerService) Analyze(pdfPath string) *models.AnalysisResult {
	text, err := a.pdfParser.ExtractText(pdfPath)
	if err != nil {
		return failure(fmt.Sprintf("Error analyzing transcript: %v", err))
	}

	if a.pdfParser.IsScanned(text) {
		return failure(MsgScannedPDF)
	}

	studentInfo := a.studentParser.Parse(text)
	if studentInfo == nil {
		return failure(MsgNoStudentInfo)
	}

	courses := a.courseParser.Parse(text)
	if len(courses) == 0 {
		return failure(MsgNoCoursesParsed)
	}

	skills := a.scorer.Score(courses)
	jobMatches := a.jobMatcher.Match(skills)
	if len(jobMatches) > topJobsCount {
		jobMatches = jobMatches[:topJobsCount]
	}

	return &models.AnalysisResult{
		Success:     true,
		StudentInfo: studentInfo,
		Courses:     courses,
		SkillScores: &models.SkillScores{
			HardSkills: skills.HardSkills,
			SoftSkills: skills.SoftSkills,
		},
		JobRecommendations: jobMatches,
		TopSkills:          topSkills(skills.HardSkills, topSkillsCount),
		UnmatchedCourses:   skills.UnmatchedCourses,
		Summary: &models.Summary{
			TotalCourses:    len(courses),
			TotalCredits:    studentInfo.TotalCredits,
			CumulativeGPA:   studentInfo.CumulativeGPA,
			TotalHardSkills: len(skills.HardSkills),
			TotalSoftSkills: len(skills.SoftSkills),
			MatchedSubjects: a.countMatched(courses),
		},
	}
}

// AnalyzeDebug runs the same pipeline but keeps the raw extracted text,
// the per-field parse trace and the legacy keyword categorization in the
// output. It never changes primary-path behavior; it only reports more.
func (a *analyzerService) AnalyzeDebug(pdfPath string) *models.DebugResult {
	text, err := a.pdfParser.ExtractText(pdfPath)
	if err != nil {
		return &models.DebugResult{
			Success:   false,
			Message:   fmt.Sprintf("Error analyzing transcript: %v", err),
			DebugInfo: &models.DebugInfo{Error: err.Error()},
		}
	}

	debug := &models.DebugInfo{
		RawText:    text,
		TextLength: len(text),
		IsScanned:  a.pdfParser.IsScanned(text),
	}
	if debug.IsScanned {
		debug.RawText = truncate(text, 1000)
		return &models.DebugResult{Success: false, Message: MsgScannedPDF, DebugInfo: debug}
	}

	studentInfo := a.studentParser.Parse(text)
	debug.StudentInfoDebug = studentInfoDebug(studentInfo)
	if studentInfo == nil {
		debug.RawText = truncate(text, 2000)
		return &models.DebugResult{Success: false, Message: MsgNoStudentInfo, DebugInfo: debug}
	}

	courses := a.courseParser.Parse(text)
	debug.ParsedCoursesRaw = courses
	debug.CoursesStats = coursesStats(courses)
	debug.CategorizationDetails = categorizationDetails(courses)
	if len(courses) == 0 {
		debug.RawText = truncate(text, 2000)
		return &models.DebugResult{Success: false, Message: MsgNoCoursesParsed, DebugInfo: debug}
	}

	skills := a.scorer.Score(courses)
	debug.SubjectMatching = &models.SubjectMatchingDebug{
		MatchedSubjects:      a.countMatched(courses),
		TotalHardSkillsFound: len(skills.HardSkills),
		TotalSoftSkillsFound: len(skills.SoftSkills),
	}

	domainScores := DomainScores(courses)
	strengths := TopStrengths(domainScores, 3)

	return &models.DebugResult{
		Success:        true,
		StudentInfo:    studentInfo,
		Courses:        courses,
		DomainScores:   domainScores,
		Strengths:      strengths,
		JobSuggestions: JobSuggestions(strengths),
		Summary: &models.DebugSummary{
			TotalCourses:  len(courses),
			TotalCredits:  studentInfo.TotalCredits,
			CumulativeGPA: studentInfo.CumulativeGPA,
		},
		DebugInfo: debug,
	}
}

func (a *analyzerService) countMatched(courses []models.Course) int {
	count := 0
	for _, course := range courses {
		if a.matcher.Match(course.CourseCode, course.CourseName) != nil {
			count++
		}
	}
	return count
}

func failure(message string) *models.AnalysisResult {
	return &models.AnalysisResult{Success: false, Message: message}
}

// topSkills returns the topN hard skills by percentage, descending, with
// the scorer's order preserved on ties.
func topSkills(hardSkills []models.SkillScore, topN int) []models.SkillScore {
	top := make([]models.SkillScore, len(hardSkills))
	copy(top, hardSkills)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Percentage > top[j].Percentage
	})
	if len(top) > topN {
		top = top[:topN]
	}
	return top
}

func studentInfoDebug(info *models.StudentInfo) *models.StudentInfoDebug {
	if info == nil {
		return &models.StudentInfoDebug{Found: false}
	}
	return &models.StudentInfoDebug{
		Found:     true,
		Name:      info.Name,
		StudentID: info.StudentID,
		Major:     info.Major,
		Degree:    info.Degree,
		GPA:       info.CumulativeGPA,
		Credits:   info.TotalCredits,
	}
}

func coursesStats(courses []models.Course) *models.CoursesStats {
	stats := &models.CoursesStats{TotalCourses: len(courses)}
	for _, course := range courses {
		if course.Grade == GradeInProgress {
			stats.CoursesInProgress++
		} else {
			stats.CoursesWithGrade++
		}
	}
	return stats
}

func categorizationDetails(courses []models.Course) []models.CourseCategorization {
	details := make([]models.CourseCategorization, 0, len(courses))
	for _, course := range courses {
		categories := CategorizeCourse(course.CourseName)
		details = append(details, models.CourseCategorization{
			CourseCode:      course.CourseCode,
			CourseName:      course.CourseName,
			Grade:           course.Grade,
			Credits:         course.Credits,
			Categories:      categories,
			MatchedKeywords: MatchedKeywords(course.CourseName, categories),
		})
	}
	return details
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
