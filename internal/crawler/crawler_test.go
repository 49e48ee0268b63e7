package crawler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go2tech/transcript-analyzer/internal/refdata"
)

func TestSplitDuties(t *testing.T) {
	duties := splitDuties("Build APIs\n\n  Operate services  \n")
	assert.Equal(t, []string{"Build APIs", "Operate services"}, duties)

	assert.Empty(t, splitDuties(""))
	assert.Empty(t, splitDuties("\n\n"))
}

func TestTransformSkills(t *testing.T) {
	skills := transformSkills([]rawSkill{
		{
			ID: "hs-1", Name: "Programming", NameTH: "การเขียนโปรแกรม",
			Levels: []rawLevel{
				{Level: 1, Description: "Novice"},
				{Level: 5, Description: "Expert", DescriptionTH: "เชี่ยวชาญ"},
			},
		},
	})

	require.Len(t, skills, 1)
	assert.Equal(t, "Programming", skills[0].NameEN)
	require.Len(t, skills[0].Levels, 2)
	assert.Equal(t, "Expert", skills[0].Levels["5"].DescriptionEN)
	assert.Equal(t, "เชี่ยวชาญ", skills[0].Levels["5"].DescriptionTH)
}

func TestSkillRefs(t *testing.T) {
	refs := skillRefs([]rawSkillAssoc{
		{Level: 2, Skill: rawNamed{ID: "hs-1", Name: "Programming", NameTH: "การเขียนโปรแกรม"}},
	})

	require.Len(t, refs, 1)
	assert.Equal(t, "hs-1", refs[0].SkillID)
	assert.Equal(t, "Programming", refs[0].SkillNameEN)
	assert.Equal(t, 2, refs[0].Level)
}

// graphqlStub serves canned responses keyed by the operation name in the
// incoming query.
func graphqlStub(t *testing.T) *httptest.Server {
	t.Helper()

	responses := map[string]string{
		"GetCurriculum": `{"curriculums_by_pk":{"id":"01007","name":"Computer Engineering","name_th":"วิศวกรรมคอมพิวเตอร์","year":2021}}`,
		"GetSubjects": `{"curriculum_subjects":[{"subject":{
			"id":"subj-1","code":"01006012","name":"Computer Programming","name_th":"",
			"hard_skills":[{"level":2,"skill":{"id":"hs-1","name":"Programming","name_th":""}}],
			"soft_skills":[{"level":1,"skill":{"id":"ss-1","name":"Teamwork","name_th":""}}]}}]}`,
		"GetHardSkills": `{"hard_skills":[{"id":"hs-1","name":"Programming","name_th":"","description":"",
			"description_th":"","levels":[{"level":5,"description":"Expert","description_th":""}]}]}`,
		"GetSoftSkills": `{"soft_skills":[{"id":"ss-1","name":"Teamwork","name_th":"","description":"",
			"description_th":"","levels":[]}]}`,
		"GetJobs": `{"jobs":[{"id":"job-1","name":"Backend Developer","name_th":"",
			"description":"Build APIs\nOperate services",
			"description_th":"",
			"job_group":{"id":"grp-1","name":"Software","name_th":"","job_field":{"id":"fld-1","name":"IT","name_th":""}},
			"hard_skills":[{"level":4,"skill":{"id":"hs-1","name":"Programming","name_th":""}}],
			"soft_skills":[]}]}`,
		"GetJobFields": `{"job_fields":[{"id":"fld-1","name":"IT","name_th":"",
			"job_groups":[{"id":"grp-1","name":"Software","name_th":""}]}]}`,
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		for operation, data := range responses {
			if strings.Contains(req.Query, operation) {
				_, _ = w.Write([]byte(`{"data":` + data + `}`))
				return
			}
		}
		t.Errorf("unexpected query: %s", req.Query)
		w.WriteHeader(http.StatusBadRequest)
	}))
}

func TestCrawlerRunWritesLoadableDatasets(t *testing.T) {
	server := graphqlStub(t)
	defer server.Close()

	outputDir := t.TempDir()
	client := NewClient(server.URL, 5*time.Second, 100)
	c := New(client, "01007", outputDir)

	require.NoError(t, c.Run(context.Background()))

	for _, filename := range []string{
		refdata.SubjectsFile, refdata.HardSkillsFile, refdata.SoftSkillsFile,
		refdata.JobsFile, refdata.JobFieldsFile, "metadata.json",
	} {
		_, err := os.Stat(filepath.Join(outputDir, filename))
		assert.NoError(t, err, filename)
	}

	// The crawled output must round-trip through the analyzer's loader.
	store, err := refdata.Load(outputDir)
	require.NoError(t, err)

	subject := store.SubjectByCode("01006012")
	require.NotNil(t, subject)
	assert.Equal(t, "Computer Programming", subject.NameEN)
	require.Len(t, subject.HardSkills, 1)
	assert.Equal(t, 2, subject.HardSkills[0].Level)

	require.Len(t, store.Jobs, 1)
	job := store.Jobs[0]
	assert.Equal(t, "Backend Developer", job.NameEN)
	assert.Equal(t, []string{"Build APIs", "Operate services"}, job.DutiesEN)
	require.NotNil(t, job.JobGroup)
	assert.Equal(t, "Software", job.JobGroup.NameEN)
	require.NotNil(t, job.JobField)
	assert.Equal(t, "IT", job.JobField.NameEN)
	require.Len(t, job.RequiredHardSkills, 1)
	assert.Equal(t, 4, job.RequiredHardSkills[0].RequiredLevel)

	assert.Equal(t, "Expert", store.HardSkillLevel("hs-1", 5).DescriptionEN)
	require.Len(t, store.JobFields, 1)
}
