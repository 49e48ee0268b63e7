package services

import (
	"math"
	"strings"

	"go2tech/transcript-analyzer/internal/models"
	"go2tech/transcript-analyzer/internal/refdata"
)

// PerfectGradeScore is the grade point of an "A", the score against which
// the maximum achievable skill score is computed.
const PerfectGradeScore = 4.0

// PercentageToLevel converts a percentage score to a proficiency level.
// Total over [0, 100] and monotonic: 80+ gives 5, 60+ gives 4, 40+ gives 3,
// 20+ gives 2, everything below gives 1.
func PercentageToLevel(percentage float64) int {
	switch {
	case percentage >= 80:
		return 5
	case percentage >= 60:
		return 4
	case percentage >= 40:
		return 3
	case percentage >= 20:
		return 2
	default:
		return 1
	}
}

// ScoredSkills is the scorer's output: aggregated hard and soft skill
// scores plus the courses no reference subject could be found for.
type ScoredSkills struct {
	HardSkills       []models.SkillScore
	SoftSkills       []models.SkillScore
	UnmatchedCourses []models.UnmatchedCourse
}

type SkillScorerService interface {
	Score(courses []models.Course) *ScoredSkills
}

type skillScorerService struct {
	store   *refdata.Store
	matcher SubjectMatcherService
}

func NewSkillScorerService(store *refdata.Store, matcher SubjectMatcherService) SkillScorerService {
	return &skillScorerService{store: store, matcher: matcher}
}

// Score aggregates per-skill weighted scores over all matched courses.
// Per skill: total += level_weight × grade_score and max += level_weight ×
// 4.0 for every contributing course; percentage = total/max × 100. Courses
// without a grade point (S, U, W, I, IP) contribute nothing. Skills are
// keyed by upper-cased English name, so the same skill referenced with
// different casing still merges.
func (s *skillScorerService) Score(courses []models.Course) *ScoredSkills {
	hard := newSkillAccumulator()
	soft := newSkillAccumulator()
	var unmatched []models.UnmatchedCourse

	for _, course := range courses {
		if course.GradePoint == nil {
			continue
		}
		gradeScore := *course.GradePoint

		subject := s.matcher.Match(course.CourseCode, course.CourseName)
		if subject == nil {
			unmatched = append(unmatched, models.UnmatchedCourse{
				CourseCode: course.CourseCode,
				CourseName: course.CourseName,
				Credits:    course.Credits,
				Grade:      course.Grade,
			})
			continue
		}

		for _, ref := range subject.HardSkills {
			hard.accumulate(ref, course, gradeScore)
		}
		for _, ref := range subject.SoftSkills {
			soft.accumulate(ref, course, gradeScore)
		}
	}

	return &ScoredSkills{
		HardSkills:       hard.finalize(s.store.HardSkillLevel),
		SoftSkills:       soft.finalize(s.store.SoftSkillLevel),
		UnmatchedCourses: unmatched,
	}
}

// skillAccumulator builds per-skill totals while keeping first-seen key
// order, so output order only depends on input course order.
type skillAccumulator struct {
	byKey map[string]*models.SkillScore
	order []string
}

func newSkillAccumulator() *skillAccumulator {
	return &skillAccumulator{byKey: make(map[string]*models.SkillScore)}
}

func (a *skillAccumulator) accumulate(ref refdata.SkillRef, course models.Course, gradeScore float64) {
	key := strings.ToUpper(ref.SkillNameEN)
	entry, ok := a.byKey[key]
	if !ok {
		entry = &models.SkillScore{
			SkillID:     ref.SkillID,
			SkillNameEN: ref.SkillNameEN,
			SkillNameTH: ref.SkillNameTH,
		}
		a.byKey[key] = entry
		a.order = append(a.order, key)
	}

	levelWeight := float64(ref.Level)
	skillScore := levelWeight * gradeScore
	entry.TotalScore += skillScore
	entry.MaxScore += levelWeight * PerfectGradeScore
	entry.ContributingCourses = append(entry.ContributingCourses, models.CourseContribution{
		CourseCode: course.CourseCode,
		CourseName: course.CourseName,
		Grade:      course.Grade,
		GradeScore: gradeScore,
		SkillLevel: ref.Level,
		SkillScore: round2(skillScore),
	})
}

func (a *skillAccumulator) finalize(levelLookup func(skillID string, level int) refdata.LevelDescription) []models.SkillScore {
	scores := make([]models.SkillScore, 0, len(a.order))
	for _, key := range a.order {
		entry := a.byKey[key]

		percentage := 0.0
		if entry.MaxScore > 0 {
			percentage = entry.TotalScore / entry.MaxScore * 100
		}
		entry.Level = PercentageToLevel(percentage)
		entry.Percentage = round1(percentage)

		desc := levelLookup(entry.SkillID, entry.Level)
		entry.LevelDescriptionEN = desc.DescriptionEN
		entry.LevelDescriptionTH = desc.DescriptionTH

		scores = append(scores, *entry)
	}
	return scores
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
