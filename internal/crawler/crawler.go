package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"go2tech/transcript-analyzer/internal/refdata"
)

// Crawler fetches the skill-mapping datasets for one curriculum and writes
// them as the static reference data files the analyzer loads at startup.
type Crawler struct {
	client       *Client
	curriculumID string
	outputDir    string
}

func New(client *Client, curriculumID, outputDir string) *Crawler {
	return &Crawler{
		client:       client,
		curriculumID: curriculumID,
		outputDir:    outputDir,
	}
}

type metadata struct {
	Source       string `json:"source"`
	CurriculumID string `json:"curriculum_id"`
	Total        int    `json:"total"`
	CrawledAt    string `json:"crawled_at"`
}

// Run fetches the five datasets concurrently and writes one JSON file per
// dataset plus a metadata file. Any failed fetch aborts the whole run;
// partial reference data is worse than none.
func (c *Crawler) Run(ctx context.Context) error {
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if curriculum, err := c.fetchCurriculum(ctx); err == nil && curriculum != nil {
		log.Printf("📚 Curriculum: %s (%s), year %s\n", curriculum.Name, curriculum.NameTH, curriculum.Year)
	}

	var subjects, hardSkills, softSkills, jobs, jobFields int
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		subjects, err = c.crawlSubjects(ctx)
		return err
	})
	g.Go(func() (err error) {
		hardSkills, err = c.crawlHardSkills(ctx)
		return err
	})
	g.Go(func() (err error) {
		softSkills, err = c.crawlSoftSkills(ctx)
		return err
	})
	g.Go(func() (err error) {
		jobs, err = c.crawlJobs(ctx)
		return err
	})
	g.Go(func() (err error) {
		jobFields, err = c.crawlJobFields(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	meta := map[string]interface{}{
		"source":        c.client.url,
		"curriculum_id": c.curriculumID,
		"crawled_at":    time.Now().Format(time.RFC3339),
		"data_summary": map[string]int{
			"subjects":    subjects,
			"hard_skills": hardSkills,
			"soft_skills": softSkills,
			"jobs":        jobs,
			"job_fields":  jobFields,
		},
	}
	if err := c.writeDataset("metadata.json", meta); err != nil {
		return err
	}

	log.Printf("✅ Crawl completed: %d subjects, %d hard skills, %d soft skills, %d jobs, %d job fields\n",
		subjects, hardSkills, softSkills, jobs, jobFields)
	return nil
}

// ---- raw API shapes ----

type rawNamed struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameTH string `json:"name_th"`
}

type rawSkillAssoc struct {
	Level int      `json:"level"`
	Skill rawNamed `json:"skill"`
}

type rawLevel struct {
	Level         int    `json:"level"`
	Description   string `json:"description"`
	DescriptionTH string `json:"description_th"`
}

type rawSkill struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	NameTH        string     `json:"name_th"`
	Description   string     `json:"description"`
	DescriptionTH string     `json:"description_th"`
	Levels        []rawLevel `json:"levels"`
}

type rawCurriculum struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	NameTH string      `json:"name_th"`
	Year   json.Number `json:"year"`
}

func (c *Crawler) fetchCurriculum(ctx context.Context) (*rawCurriculum, error) {
	var data struct {
		Curriculum *rawCurriculum `json:"curriculums_by_pk"`
	}
	err := c.client.Query(ctx, queryCurriculum, c.vars(), &data)
	return data.Curriculum, err
}

func (c *Crawler) crawlSubjects(ctx context.Context) (int, error) {
	var data struct {
		Rows []struct {
			Subject struct {
				rawNamed
				Code       string          `json:"code"`
				HardSkills []rawSkillAssoc `json:"hard_skills"`
				SoftSkills []rawSkillAssoc `json:"soft_skills"`
			} `json:"subject"`
		} `json:"curriculum_subjects"`
	}
	if err := c.client.Query(ctx, querySubjects, c.vars(), &data); err != nil {
		return 0, fmt.Errorf("failed to crawl subjects: %w", err)
	}

	subjects := make([]refdata.Subject, 0, len(data.Rows))
	for _, row := range data.Rows {
		subjects = append(subjects, refdata.Subject{
			ID:         row.Subject.ID,
			Code:       row.Subject.Code,
			NameEN:     row.Subject.Name,
			NameTH:     row.Subject.NameTH,
			HardSkills: skillRefs(row.Subject.HardSkills),
			SoftSkills: skillRefs(row.Subject.SoftSkills),
		})
	}

	return len(subjects), c.writeDataset(refdata.SubjectsFile, map[string]interface{}{
		"metadata": c.metadataFor(len(subjects)),
		"subjects": subjects,
	})
}

func (c *Crawler) crawlHardSkills(ctx context.Context) (int, error) {
	var data struct {
		Skills []rawSkill `json:"hard_skills"`
	}
	if err := c.client.Query(ctx, queryHardSkills, c.vars(), &data); err != nil {
		return 0, fmt.Errorf("failed to crawl hard skills: %w", err)
	}

	skills := transformSkills(data.Skills)
	return len(skills), c.writeDataset(refdata.HardSkillsFile, map[string]interface{}{
		"metadata":    c.metadataFor(len(skills)),
		"hard_skills": skills,
	})
}

func (c *Crawler) crawlSoftSkills(ctx context.Context) (int, error) {
	var data struct {
		Skills []rawSkill `json:"soft_skills"`
	}
	if err := c.client.Query(ctx, querySoftSkills, nil, &data); err != nil {
		return 0, fmt.Errorf("failed to crawl soft skills: %w", err)
	}

	skills := transformSkills(data.Skills)
	return len(skills), c.writeDataset(refdata.SoftSkillsFile, map[string]interface{}{
		"metadata":    c.metadataFor(len(skills)),
		"soft_skills": skills,
	})
}

func (c *Crawler) crawlJobs(ctx context.Context) (int, error) {
	var data struct {
		Jobs []struct {
			ID            string `json:"id"`
			Name          string `json:"name"`
			NameTH        string `json:"name_th"`
			Description   string `json:"description"`
			DescriptionTH string `json:"description_th"`
			JobGroup      *struct {
				rawNamed
				JobField *rawNamed `json:"job_field"`
			} `json:"job_group"`
			HardSkills []rawSkillAssoc `json:"hard_skills"`
			SoftSkills []rawSkillAssoc `json:"soft_skills"`
		} `json:"jobs"`
	}
	if err := c.client.Query(ctx, queryJobs, c.vars(), &data); err != nil {
		return 0, fmt.Errorf("failed to crawl jobs: %w", err)
	}

	jobs := make([]refdata.Job, 0, len(data.Jobs))
	for _, raw := range data.Jobs {
		job := refdata.Job{
			ID:                 raw.ID,
			NameEN:             raw.Name,
			NameTH:             raw.NameTH,
			DutiesEN:           splitDuties(raw.Description),
			DutiesTH:           splitDuties(raw.DescriptionTH),
			RequiredHardSkills: requiredSkills(raw.HardSkills),
			RequiredSoftSkills: requiredSkills(raw.SoftSkills),
		}
		if raw.JobGroup != nil {
			job.JobGroup = &refdata.JobGroupRef{
				ID:     raw.JobGroup.ID,
				NameEN: raw.JobGroup.Name,
				NameTH: raw.JobGroup.NameTH,
			}
			if raw.JobGroup.JobField != nil {
				job.JobField = &refdata.JobGroupRef{
					ID:     raw.JobGroup.JobField.ID,
					NameEN: raw.JobGroup.JobField.Name,
					NameTH: raw.JobGroup.JobField.NameTH,
				}
			}
		}
		jobs = append(jobs, job)
	}

	return len(jobs), c.writeDataset(refdata.JobsFile, map[string]interface{}{
		"metadata": c.metadataFor(len(jobs)),
		"jobs":     jobs,
	})
}

func (c *Crawler) crawlJobFields(ctx context.Context) (int, error) {
	var data struct {
		Fields []struct {
			rawNamed
			JobGroups []rawNamed `json:"job_groups"`
		} `json:"job_fields"`
	}
	if err := c.client.Query(ctx, queryJobFields, c.vars(), &data); err != nil {
		return 0, fmt.Errorf("failed to crawl job fields: %w", err)
	}

	fields := make([]map[string]interface{}, 0, len(data.Fields))
	for _, raw := range data.Fields {
		groups := make([]map[string]string, 0, len(raw.JobGroups))
		for _, group := range raw.JobGroups {
			groups = append(groups, map[string]string{
				"id":      group.ID,
				"name_en": group.Name,
				"name_th": group.NameTH,
			})
		}
		fields = append(fields, map[string]interface{}{
			"id":         raw.ID,
			"name_en":    raw.Name,
			"name_th":    raw.NameTH,
			"job_groups": groups,
		})
	}

	return len(fields), c.writeDataset(refdata.JobFieldsFile, map[string]interface{}{
		"metadata":   c.metadataFor(len(fields)),
		"job_fields": fields,
	})
}

// ---- transforms ----

func skillRefs(assocs []rawSkillAssoc) []refdata.SkillRef {
	refs := make([]refdata.SkillRef, 0, len(assocs))
	for _, assoc := range assocs {
		refs = append(refs, refdata.SkillRef{
			SkillID:     assoc.Skill.ID,
			SkillNameEN: assoc.Skill.Name,
			SkillNameTH: assoc.Skill.NameTH,
			Level:       assoc.Level,
		})
	}
	return refs
}

func requiredSkills(assocs []rawSkillAssoc) []refdata.RequiredSkill {
	required := make([]refdata.RequiredSkill, 0, len(assocs))
	for _, assoc := range assocs {
		required = append(required, refdata.RequiredSkill{
			SkillID:       assoc.Skill.ID,
			SkillNameEN:   assoc.Skill.Name,
			SkillNameTH:   assoc.Skill.NameTH,
			RequiredLevel: assoc.Level,
		})
	}
	return required
}

func transformSkills(raws []rawSkill) []refdata.Skill {
	skills := make([]refdata.Skill, 0, len(raws))
	for _, raw := range raws {
		levels := make(map[string]refdata.LevelDescription, len(raw.Levels))
		for _, lvl := range raw.Levels {
			levels[strconv.Itoa(lvl.Level)] = refdata.LevelDescription{
				DescriptionEN: lvl.Description,
				DescriptionTH: lvl.DescriptionTH,
			}
		}
		skills = append(skills, refdata.Skill{
			ID:            raw.ID,
			NameEN:        raw.Name,
			NameTH:        raw.NameTH,
			DescriptionEN: raw.Description,
			DescriptionTH: raw.DescriptionTH,
			Levels:        levels,
		})
	}
	return skills
}

// splitDuties turns the newline-separated description blob into a list.
func splitDuties(description string) []string {
	var duties []string
	for _, line := range strings.Split(description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			duties = append(duties, line)
		}
	}
	return duties
}

func (c *Crawler) vars() map[string]interface{} {
	return map[string]interface{}{"curriculum_id": c.curriculumID}
}

func (c *Crawler) metadataFor(total int) metadata {
	return metadata{
		Source:       c.client.url,
		CurriculumID: c.curriculumID,
		Total:        total,
		CrawledAt:    time.Now().Format(time.RFC3339),
	}
}

func (c *Crawler) writeDataset(filename string, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}

	path := filepath.Join(c.outputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	log.Printf("💾 Saved %s\n", path)
	return nil
}
