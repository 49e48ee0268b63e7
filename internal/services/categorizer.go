package services

import (
	"math"
	"sort"
	"strings"

	"go2tech/transcript-analyzer/internal/models"
)

// Legacy keyword categorization, predating the reference skill mapping.
// Only the diagnostic path uses it; the primary analysis never does.

const fallbackCategory = "General/Soft Skills"

type courseCategory struct {
	Name     string
	Keywords []string
}

var courseCategories = []courseCategory{
	{"Programming/Backend", []string{"PROGRAMMING", "OBJECT ORIENTED", "DATA STRUCTURE", "SOFTWARE DEVELOPMENT", "ALGORITHM"}},
	{"Frontend/Web", []string{"WEB APPLICATION", "WEB DEVELOPMENT", "FRONTEND"}},
	{"UX/UI Design", []string{"USER EXPERIENCE", "USER INTERFACE", "UX", "UI DESIGN"}},
	{"Database", []string{"DATABASE", "SQL", "DATA MANAGEMENT"}},
	{"Networks", []string{"NETWORK", "INTERNETWORKING", "COMMUNICATION PROTOCOL"}},
	{"Cloud/DevOps", []string{"CLOUD", "DEVOPS", "CONTAINER", "KUBERNETES"}},
	{"Security", []string{"SECURITY", "HACKING", "PENETRATION", "CRYPTOGRAPHY", "CYBER"}},
	{"Hardware/Embedded", []string{"MICROCONTROLLER", "CIRCUITS", "ELECTRONICS", "EMBEDDED", "DIGITAL SYSTEM", "COMPUTER ORGANIZATION", "ARCHITECTURE"}},
	{"OS/Systems", []string{"OPERATING SYSTEM", "PLATFORM ADMINISTRATION", "LINUX", "UNIX"}},
	{"AI/ML/Data Science", []string{"MACHINE LEARNING", "ARTIFICIAL INTELLIGENCE", "AI", "ML", "DATA SCIENCE", "DEEP LEARNING"}},
	{"Math/Statistics", []string{"CALCULUS", "DISCRETE", "DIFFERENTIAL", "LINEAR ALGEBRA", "PROBABILITY", "STATISTICS", "COMPUTATION"}},
	{fallbackCategory, []string{"ENGLISH", "MANAGEMENT", "LEADERSHIP", "COMMUNICATION", "FOUNDATION", "SOCIETY", "BUSINESS"}},
}

var categoryJobSuggestions = map[string][]string{
	"Frontend/Web":        {"Frontend Developer", "Web Developer", "React Developer"},
	"Programming/Backend": {"Backend Developer", "Software Engineer", "Python Developer"},
	"UX/UI Design":        {"UX Designer", "UI Designer", "Product Designer"},
	"Database":            {"Database Administrator", "Data Engineer"},
	"Networks":            {"Network Engineer", "System Administrator"},
	"Cloud/DevOps":        {"DevOps Engineer", "Cloud Engineer", "SRE"},
	"Security":            {"Security Engineer", "Penetration Tester", "Security Analyst"},
	"Hardware/Embedded":   {"Embedded Engineer", "IoT Developer", "Firmware Engineer"},
	"OS/Systems":          {"System Administrator", "Platform Engineer"},
	"AI/ML/Data Science":  {"ML Engineer", "Data Scientist", "AI Engineer"},
}

// CategorizeCourse assigns every category whose keyword list hits the
// course name, defaulting to the general bucket.
func CategorizeCourse(courseName string) []string {
	var categories []string
	nameUpper := strings.ToUpper(courseName)
	for _, category := range courseCategories {
		for _, keyword := range category.Keywords {
			if strings.Contains(nameUpper, keyword) {
				categories = append(categories, category.Name)
				break
			}
		}
	}
	if categories == nil {
		return []string{fallbackCategory}
	}
	return categories
}

// MatchedKeywords returns, per assigned category, the first keyword that
// hit the course name.
func MatchedKeywords(courseName string, categories []string) []string {
	var matched []string
	nameUpper := strings.ToUpper(courseName)
	for _, name := range categories {
		for _, category := range courseCategories {
			if category.Name != name {
				continue
			}
			for _, keyword := range category.Keywords {
				if strings.Contains(nameUpper, keyword) {
					matched = append(matched, keyword)
					break
				}
			}
		}
	}
	return matched
}

// DomainScores averages credit-weighted grade points per category over all
// graded courses.
func DomainScores(courses []models.Course) map[string]float64 {
	totals := make(map[string]float64)
	weights := make(map[string]int)
	for _, course := range courses {
		if course.GradePoint == nil {
			continue
		}
		for _, category := range CategorizeCourse(course.CourseName) {
			totals[category] += *course.GradePoint * float64(course.Credits)
			weights[category] += course.Credits
		}
	}

	scores := make(map[string]float64, len(totals))
	for category, total := range totals {
		if weights[category] > 0 {
			scores[category] = math.Round(total/float64(weights[category])*100) / 100
		}
	}
	return scores
}

// TopStrengths returns the topN categories by domain score, descending.
func TopStrengths(domainScores map[string]float64, topN int) []string {
	categories := make([]string, 0, len(domainScores))
	for category := range domainScores {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if domainScores[categories[i]] != domainScores[categories[j]] {
			return domainScores[categories[i]] > domainScores[categories[j]]
		}
		return categories[i] < categories[j]
	})
	if len(categories) > topN {
		categories = categories[:topN]
	}
	return categories
}

// JobSuggestions maps strength categories to static job titles, unique,
// capped at six.
func JobSuggestions(strengths []string) []string {
	seen := make(map[string]bool)
	var suggestions []string
	for _, strength := range strengths {
		for _, job := range categoryJobSuggestions[strength] {
			if seen[job] {
				continue
			}
			seen[job] = true
			suggestions = append(suggestions, job)
		}
	}
	if len(suggestions) > 6 {
		suggestions = suggestions[:6]
	}
	return suggestions
}
