package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go2tech/transcript-analyzer/internal/models"
	"go2tech/transcript-analyzer/internal/refdata"
)

func TestJobMatcherRankingAndScores(t *testing.T) {
	matcher := NewJobMatcherService(testStore(t))

	matches := matcher.Match(&ScoredSkills{
		HardSkills: []models.SkillScore{
			{SkillID: "hs-prog", SkillNameEN: "Programming", Level: 2, Percentage: 45.0},
		},
	})
	require.Len(t, matches, 3)

	// Backend requires Programming at level 4; level 2 scores half.
	backend := matches[0]
	assert.Equal(t, "job-backend", backend.JobID)
	assert.Equal(t, 50.0, backend.OverallScore)
	assert.Equal(t, 50.0, backend.HardSkillsScore)
	assert.Equal(t, backend.HardSkillsScore, backend.OverallScore)

	require.Len(t, backend.HardSkillDetails, 1)
	detail := backend.HardSkillDetails[0]
	assert.Equal(t, models.StatusBelow, detail.Status)
	assert.Equal(t, 2, detail.Gap)
	assert.Equal(t, 0.5, detail.Score)
	assert.Equal(t, 45.0, detail.UserPercentage)

	// No soft skills at all: the required one is missing and scores zero.
	assert.Equal(t, 0.0, backend.SoftSkillsScore)
	require.Len(t, backend.MissingSoftSkills, 1)
	assert.Equal(t, "Teamwork", backend.MissingSoftSkills[0].SkillNameEN)

	assert.Equal(t, 1, backend.Stats.MatchedHardSkills)
	assert.Equal(t, 1, backend.Stats.TotalRequiredHardSkills)
	assert.Equal(t, 0, backend.Stats.MatchedSoftSkills)

	// The two zero-score jobs keep their dataset order.
	assert.Equal(t, "job-dba", matches[1].JobID)
	assert.Equal(t, 0.0, matches[1].OverallScore)
	assert.Equal(t, "job-intern", matches[2].JobID)
	assert.Equal(t, 0.0, matches[2].OverallScore)
}

func TestJobMatcherMissingSkillScoresZero(t *testing.T) {
	matcher := NewJobMatcherService(testStore(t))

	matches := matcher.Match(&ScoredSkills{})
	require.Len(t, matches, 3)

	for _, match := range matches {
		assert.Equal(t, 0.0, match.OverallScore)
	}

	var dba *models.JobMatch
	for i := range matches {
		if matches[i].JobID == "job-dba" {
			dba = &matches[i]
		}
	}
	require.NotNil(t, dba)
	require.Len(t, dba.MissingHardSkills, 1)
	assert.Equal(t, "Database", dba.MissingHardSkills[0].SkillNameEN)
	require.Len(t, dba.HardSkillDetails, 1)
	assert.Equal(t, models.StatusMissing, dba.HardSkillDetails[0].Status)
	assert.Equal(t, 3, dba.HardSkillDetails[0].Gap)
}

func TestMatchRequirementsStatusAndCaps(t *testing.T) {
	required := []refdata.RequiredSkill{
		{SkillID: "hs-a", SkillNameEN: "Alpha", RequiredLevel: 3},
		{SkillID: "hs-b", SkillNameEN: "Beta", RequiredLevel: 3},
		{SkillID: "hs-c", SkillNameEN: "Gamma", RequiredLevel: 0},
	}
	userSkills := []models.SkillScore{
		{SkillNameEN: "alpha", Level: 5},
		{SkillNameEN: "Beta", Level: 3},
		{SkillNameEN: "Gamma", Level: 1},
	}

	score, details, missing := matchRequirements(required, userSkills)
	assert.Empty(t, missing)
	require.Len(t, details, 3)

	// Exceeding the requirement caps at 1.0, never a bonus.
	assert.Equal(t, models.StatusExceeded, details[0].Status)
	assert.Equal(t, 1.0, details[0].Score)
	assert.Equal(t, 0, details[0].Gap)

	assert.Equal(t, models.StatusMet, details[1].Status)
	assert.Equal(t, 1.0, details[1].Score)

	// A zero required level is trivially satisfied.
	assert.Equal(t, 1.0, details[2].Score)

	assert.Equal(t, 100.0, score)
}

func TestMatchRequirementsEmptyRequirements(t *testing.T) {
	score, details, missing := matchRequirements(nil, []models.SkillScore{
		{SkillNameEN: "Programming", Level: 5},
	})
	assert.Equal(t, 0.0, score)
	assert.Empty(t, details)
	assert.Empty(t, missing)
}
