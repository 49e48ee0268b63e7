package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go2tech/transcript-analyzer/internal/refdata"
)

// testStore builds a small reference dataset shared by the matcher, scorer
// and job matcher tests.
func testStore(t *testing.T) *refdata.Store {
	t.Helper()

	store, err := refdata.NewStore(
		[]refdata.Subject{
			{
				ID: "subj-prog", Code: "01006012", NameEN: "Computer Programming",
				HardSkills: []refdata.SkillRef{
					{SkillID: "hs-prog", SkillNameEN: "Programming", SkillNameTH: "การเขียนโปรแกรม", Level: 2},
				},
				SoftSkills: []refdata.SkillRef{
					{SkillID: "ss-team", SkillNameEN: "Teamwork", Level: 1},
				},
			},
			{
				ID: "subj-db", Code: "01006020", NameEN: "Database Systems",
				HardSkills: []refdata.SkillRef{
					{SkillID: "hs-db", SkillNameEN: "Database", Level: 3},
				},
			},
			{
				ID: "subj-net", Code: "01006030", NameEN: "Computer Networks",
				HardSkills: []refdata.SkillRef{
					{SkillID: "hs-net", SkillNameEN: "Networking", Level: 2},
				},
			},
		},
		[]refdata.Skill{
			{ID: "hs-prog", NameEN: "Programming", Levels: map[string]refdata.LevelDescription{
				"5": {DescriptionEN: "Expert level", DescriptionTH: "ระดับเชี่ยวชาญ"},
				"3": {DescriptionEN: "Working level"},
			}},
			{ID: "hs-db", NameEN: "Database"},
			{ID: "hs-net", NameEN: "Networking"},
		},
		[]refdata.Skill{
			{ID: "ss-team", NameEN: "Teamwork", Levels: map[string]refdata.LevelDescription{
				"5": {DescriptionEN: "Leads teams"},
			}},
		},
		[]refdata.Job{
			{
				ID: "job-backend", NameEN: "Backend Developer",
				RequiredHardSkills: []refdata.RequiredSkill{
					{SkillID: "hs-prog", SkillNameEN: "Programming", RequiredLevel: 4},
				},
				RequiredSoftSkills: []refdata.RequiredSkill{
					{SkillID: "ss-team", SkillNameEN: "Teamwork", RequiredLevel: 3},
				},
			},
			{
				ID: "job-dba", NameEN: "Database Administrator",
				RequiredHardSkills: []refdata.RequiredSkill{
					{SkillID: "hs-db", SkillNameEN: "Database", RequiredLevel: 3},
				},
			},
			{
				ID: "job-intern", NameEN: "Generalist Intern",
			},
		},
		nil,
	)
	require.NoError(t, err)
	return store
}

func fptr(v float64) *float64 {
	return &v
}
