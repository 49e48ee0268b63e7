package refdata

import "fmt"

// SkillRef is a subject-to-skill association: the subject teaches the skill
// at the given level weight.
type SkillRef struct {
	SkillID     string `json:"skill_id"`
	SkillNameEN string `json:"skill_name_en"`
	SkillNameTH string `json:"skill_name_th"`
	Level       int    `json:"level"`
}

// Subject is a curriculum subject with its skill mapping.
type Subject struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	NameEN     string     `json:"name_en"`
	NameTH     string     `json:"name_th"`
	HardSkills []SkillRef `json:"hard_skills"`
	SoftSkills []SkillRef `json:"soft_skills"`
}

// LevelDescription describes what a proficiency level means for a skill.
type LevelDescription struct {
	DescriptionEN string `json:"description_en"`
	DescriptionTH string `json:"description_th"`
}

// Skill is a hard or soft skill definition. Levels is keyed by the level
// number as a string ("1".."6" depending on dataset).
type Skill struct {
	ID            string                      `json:"id"`
	NameEN        string                      `json:"name_en"`
	NameTH        string                      `json:"name_th"`
	DescriptionEN string                      `json:"description_en"`
	DescriptionTH string                      `json:"description_th"`
	Levels        map[string]LevelDescription `json:"levels"`
}

// RequiredSkill is a job's requirement for one skill.
type RequiredSkill struct {
	SkillID       string `json:"skill_id"`
	SkillNameEN   string `json:"skill_name_en"`
	SkillNameTH   string `json:"skill_name_th"`
	RequiredLevel int    `json:"required_level"`
}

// JobGroupRef is the group/field classification attached to a job.
type JobGroupRef struct {
	ID     string `json:"id"`
	NameEN string `json:"name_en"`
	NameTH string `json:"name_th"`
}

// Job is a reference job with its required skill levels.
type Job struct {
	ID                 string          `json:"id"`
	NameEN             string          `json:"name_en"`
	NameTH             string          `json:"name_th"`
	DutiesEN           []string        `json:"duties_en"`
	DutiesTH           []string        `json:"duties_th"`
	JobGroup           *JobGroupRef    `json:"job_group"`
	JobField           *JobGroupRef    `json:"job_field"`
	RequiredHardSkills []RequiredSkill `json:"required_hard_skills"`
	RequiredSoftSkills []RequiredSkill `json:"required_soft_skills"`
}

// JobField is a top-level job classification with its groups.
type JobField struct {
	ID        string `json:"id"`
	NameEN    string `json:"name_en"`
	NameTH    string `json:"name_th"`
	JobGroups []struct {
		ID     string `json:"id"`
		NameEN string `json:"name_en"`
		NameTH string `json:"name_th"`
	} `json:"job_groups"`
}

func (s *Subject) validate(i int) error {
	if s.ID == "" || s.Code == "" {
		return fmt.Errorf("subject %d: missing id or code", i)
	}
	for _, ref := range append(append([]SkillRef{}, s.HardSkills...), s.SoftSkills...) {
		if ref.SkillID == "" || ref.SkillNameEN == "" {
			return fmt.Errorf("subject %s: skill ref missing id or name_en", s.Code)
		}
		if ref.Level <= 0 {
			return fmt.Errorf("subject %s: skill %s has non-positive level", s.Code, ref.SkillID)
		}
	}
	return nil
}

func (s *Skill) validate(kind string, i int) error {
	if s.ID == "" || s.NameEN == "" {
		return fmt.Errorf("%s skill %d: missing id or name_en", kind, i)
	}
	return nil
}

func (j *Job) validate(i int) error {
	if j.ID == "" || j.NameEN == "" {
		return fmt.Errorf("job %d: missing id or name_en", i)
	}
	for _, req := range append(append([]RequiredSkill{}, j.RequiredHardSkills...), j.RequiredSoftSkills...) {
		if req.SkillID == "" || req.SkillNameEN == "" {
			return fmt.Errorf("job %s: required skill missing id or name_en", j.ID)
		}
	}
	return nil
}
