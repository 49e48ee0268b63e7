package refdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, name string, payload interface{}) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func writeAllDatasets(t *testing.T, dir string, subjects []Subject) {
	t.Helper()
	writeDataset(t, dir, SubjectsFile, map[string]interface{}{"subjects": subjects})
	writeDataset(t, dir, HardSkillsFile, map[string]interface{}{"hard_skills": []Skill{
		{ID: "hs-1", NameEN: "Programming", Levels: map[string]LevelDescription{
			"5": {DescriptionEN: "Expert", DescriptionTH: "เชี่ยวชาญ"},
		}},
	}})
	writeDataset(t, dir, SoftSkillsFile, map[string]interface{}{"soft_skills": []Skill{
		{ID: "ss-1", NameEN: "Teamwork"},
	}})
	writeDataset(t, dir, JobsFile, map[string]interface{}{"jobs": []Job{
		{ID: "job-1", NameEN: "Backend Developer"},
	}})
	writeDataset(t, dir, JobFieldsFile, map[string]interface{}{"job_fields": []JobField{
		{ID: "field-1", NameEN: "Software"},
	}})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeAllDatasets(t, dir, []Subject{
		{ID: "subj-1", Code: "01006012", NameEN: "Computer Programming", HardSkills: []SkillRef{
			{SkillID: "hs-1", SkillNameEN: "Programming", Level: 3},
		}},
	})

	store, err := Load(dir)
	require.NoError(t, err)

	assert.Len(t, store.Subjects, 1)
	assert.Len(t, store.HardSkills, 1)
	assert.Len(t, store.SoftSkills, 1)
	assert.Len(t, store.Jobs, 1)
	assert.Len(t, store.JobFields, 1)

	require.NotNil(t, store.SubjectByCode("01006012"))
	assert.Equal(t, "subj-1", store.SubjectByCode("01006012").ID)
	assert.Nil(t, store.SubjectByCode("99999999"))

	// Name lookup is case-insensitive and trimmed
	require.NotNil(t, store.SubjectByName("  computer programming "))
	assert.Equal(t, "subj-1", store.SubjectByName("COMPUTER PROGRAMMING").ID)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	// No datasets written at all
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name     string
		subjects []Subject
	}{
		{
			name:     "subject without code",
			subjects: []Subject{{ID: "subj-1", NameEN: "Orphan"}},
		},
		{
			name: "skill ref without id",
			subjects: []Subject{{ID: "subj-1", Code: "01006012", NameEN: "Subject",
				HardSkills: []SkillRef{{SkillNameEN: "Programming", Level: 2}}}},
		},
		{
			name: "skill ref with zero level",
			subjects: []Subject{{ID: "subj-1", Code: "01006012", NameEN: "Subject",
				HardSkills: []SkillRef{{SkillID: "hs-1", SkillNameEN: "Programming"}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeAllDatasets(t, dir, tt.subjects)
			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestNameIndexOrderAndDuplicates(t *testing.T) {
	store, err := NewStore([]Subject{
		{ID: "subj-1", Code: "00000001", NameEN: "Calculus"},
		{ID: "subj-2", Code: "00000002", NameEN: "Physics"},
		{ID: "subj-3", Code: "00000003", NameEN: "Calculus"},
	}, nil, nil, nil, nil)
	require.NoError(t, err)

	index := store.SubjectNameIndex()
	require.Len(t, index, 2)

	// First occurrence keeps its position, last loaded subject wins the slot
	assert.Equal(t, "CALCULUS", index[0].Name)
	assert.Equal(t, "subj-3", index[0].Subject.ID)
	assert.Equal(t, "PHYSICS", index[1].Name)
	assert.Equal(t, "subj-2", index[1].Subject.ID)
}

func TestSkillLevelLookup(t *testing.T) {
	store, err := NewStore(nil,
		[]Skill{{ID: "hs-1", NameEN: "Programming", Levels: map[string]LevelDescription{
			"4": {DescriptionEN: "Advanced", DescriptionTH: "ขั้นสูง"},
		}}},
		[]Skill{{ID: "ss-1", NameEN: "Teamwork"}},
		nil, nil)
	require.NoError(t, err)

	desc := store.HardSkillLevel("hs-1", 4)
	assert.Equal(t, "Advanced", desc.DescriptionEN)
	assert.Equal(t, "ขั้นสูง", desc.DescriptionTH)

	// Missing level, skill or type all degrade to empty descriptions
	assert.Equal(t, LevelDescription{}, store.HardSkillLevel("hs-1", 2))
	assert.Equal(t, LevelDescription{}, store.HardSkillLevel("nope", 4))
	assert.Equal(t, LevelDescription{}, store.SoftSkillLevel("ss-1", 1))
}
