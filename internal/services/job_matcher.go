package services

import (
	"sort"
	"strings"

	"go2tech/transcript-analyzer/internal/models"
	"go2tech/transcript-analyzer/internal/refdata"
)

type JobMatcherService interface {
	Match(skills *ScoredSkills) []models.JobMatch
}

type jobMatcherService struct {
	store *refdata.Store
}

func NewJobMatcherService(store *refdata.Store) JobMatcherService {
	return &jobMatcherService{store: store}
}

// Match scores the student's skills against every reference job and
// returns all of them ranked, zero-fit jobs included. The ranking sorts
// descending by overall score; jobs with equal scores keep their dataset
// order. Overall score is the hard-skill score alone: soft skills are
// scored and reported in full but deliberately left out of the ranking.
func (m *jobMatcherService) Match(skills *ScoredSkills) []models.JobMatch {
	results := make([]models.JobMatch, 0, len(m.store.Jobs))

	for i := range m.store.Jobs {
		job := &m.store.Jobs[i]

		hardScore, hardDetails, missingHard := matchRequirements(job.RequiredHardSkills, skills.HardSkills)
		softScore, softDetails, missingSoft := matchRequirements(job.RequiredSoftSkills, skills.SoftSkills)

		results = append(results, models.JobMatch{
			JobID:             job.ID,
			JobNameEN:         job.NameEN,
			JobField:          job.JobField,
			JobGroup:          job.JobGroup,
			OverallScore:      round1(hardScore),
			HardSkillsScore:   round1(hardScore),
			SoftSkillsScore:   round1(softScore),
			HardSkillDetails:  hardDetails,
			SoftSkillDetails:  softDetails,
			MissingHardSkills: missingHard,
			MissingSoftSkills: missingSoft,
			Stats: models.JobMatchStats{
				TotalRequiredHardSkills: len(job.RequiredHardSkills),
				MatchedHardSkills:       countMatched(hardDetails),
				TotalRequiredSoftSkills: len(job.RequiredSoftSkills),
				MatchedSoftSkills:       countMatched(softDetails),
			},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
	return results
}

// matchRequirements scores one requirement list against the student's
// skill records. Per skill: min(user_level/required_level, 1.0), or 1.0
// when the required level is zero; a skill the student lacks scores 0 with
// status "missing". The category score is the plain average × 100, or 0
// when the job requires nothing in this category.
func matchRequirements(required []refdata.RequiredSkill, userSkills []models.SkillScore) (float64, []models.SkillMatchDetail, []models.MissingSkill) {
	var (
		scoreSum float64
		details  []models.SkillMatchDetail
		missing  []models.MissingSkill
	)

	for _, req := range required {
		userSkill := findUserSkill(userSkills, req.SkillNameEN)
		if userSkill == nil {
			missing = append(missing, models.MissingSkill{
				SkillID:       req.SkillID,
				SkillNameEN:   req.SkillNameEN,
				RequiredLevel: req.RequiredLevel,
			})
			details = append(details, models.SkillMatchDetail{
				SkillID:       req.SkillID,
				SkillNameEN:   req.SkillNameEN,
				RequiredLevel: req.RequiredLevel,
				Status:        models.StatusMissing,
				Gap:           req.RequiredLevel,
			})
			continue
		}

		score := 1.0
		if req.RequiredLevel > 0 {
			score = float64(userSkill.Level) / float64(req.RequiredLevel)
			if score > 1.0 {
				score = 1.0
			}
		}
		scoreSum += score

		status := models.StatusBelow
		switch {
		case userSkill.Level > req.RequiredLevel:
			status = models.StatusExceeded
		case userSkill.Level == req.RequiredLevel:
			status = models.StatusMet
		}

		gap := req.RequiredLevel - userSkill.Level
		if gap < 0 {
			gap = 0
		}

		details = append(details, models.SkillMatchDetail{
			SkillID:        req.SkillID,
			SkillNameEN:    req.SkillNameEN,
			RequiredLevel:  req.RequiredLevel,
			UserLevel:      userSkill.Level,
			UserPercentage: userSkill.Percentage,
			Status:         status,
			Gap:            gap,
			Score:          round3(score),
		})
	}

	if len(required) == 0 {
		return 0, details, missing
	}
	return scoreSum / float64(len(required)) * 100, details, missing
}

// findUserSkill locates a skill record by case-insensitive name, scanning
// in the scorer's deterministic output order.
func findUserSkill(skills []models.SkillScore, name string) *models.SkillScore {
	target := strings.ToUpper(strings.TrimSpace(name))
	for i := range skills {
		if strings.ToUpper(strings.TrimSpace(skills[i].SkillNameEN)) == target {
			return &skills[i]
		}
	}
	return nil
}

func countMatched(details []models.SkillMatchDetail) int {
	count := 0
	for _, d := range details {
		if d.Status != models.StatusMissing {
			count++
		}
	}
	return count
}
