package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Dataset file names, as written by cmd/crawler.
const (
	SubjectsFile   = "subjects.json"
	HardSkillsFile = "hard_skills.json"
	SoftSkillsFile = "soft_skills.json"
	JobsFile       = "jobs.json"
	JobFieldsFile  = "job_fields.json"
)

// NamedSubject pairs an upper-cased subject name with its subject, in
// dataset insertion order. Subject name matching iterates this slice so
// that containment lookups stay deterministic across runs.
type NamedSubject struct {
	Name    string
	Subject *Subject
}

// Store holds all reference datasets in memory. It is read-only after Load
// and safe for unsynchronized concurrent reads.
type Store struct {
	Subjects   []Subject
	HardSkills []Skill
	SoftSkills []Skill
	Jobs       []Job
	JobFields  []JobField

	subjectByCode map[string]*Subject
	subjectByName map[string]*Subject
	nameIndex     []NamedSubject
	hardSkillByID map[string]*Skill
	softSkillByID map[string]*Skill
}

var (
	defaultStore *Store
	loadErr      error
	loadOnce     sync.Once
)

// Get returns the process-wide store, loading it from dir on first call.
// The first caller's dir wins; subsequent calls return the memoized store.
func Get(dir string) (*Store, error) {
	loadOnce.Do(func() {
		defaultStore, loadErr = Load(dir)
	})
	return defaultStore, loadErr
}

// Load reads and validates the five reference datasets from dir.
// Datasets are internal and trusted: any missing required field is an
// error, not a degraded load.
func Load(dir string) (*Store, error) {
	var subjects struct {
		Subjects []Subject `json:"subjects"`
	}
	if err := readDataset(dir, SubjectsFile, &subjects); err != nil {
		return nil, err
	}

	var hard struct {
		HardSkills []Skill `json:"hard_skills"`
	}
	if err := readDataset(dir, HardSkillsFile, &hard); err != nil {
		return nil, err
	}

	var soft struct {
		SoftSkills []Skill `json:"soft_skills"`
	}
	if err := readDataset(dir, SoftSkillsFile, &soft); err != nil {
		return nil, err
	}

	var jobs struct {
		Jobs []Job `json:"jobs"`
	}
	if err := readDataset(dir, JobsFile, &jobs); err != nil {
		return nil, err
	}

	var fields struct {
		JobFields []JobField `json:"job_fields"`
	}
	if err := readDataset(dir, JobFieldsFile, &fields); err != nil {
		return nil, err
	}

	return NewStore(subjects.Subjects, hard.HardSkills, soft.SoftSkills, jobs.Jobs, fields.JobFields)
}

// NewStore validates the datasets and builds the lookup indexes.
func NewStore(subjects []Subject, hardSkills, softSkills []Skill, jobs []Job, jobFields []JobField) (*Store, error) {
	store := &Store{
		Subjects:      subjects,
		HardSkills:    hardSkills,
		SoftSkills:    softSkills,
		Jobs:          jobs,
		JobFields:     jobFields,
		subjectByCode: make(map[string]*Subject),
		subjectByName: make(map[string]*Subject),
		hardSkillByID: make(map[string]*Skill),
		softSkillByID: make(map[string]*Skill),
	}
	if err := store.buildIndexes(); err != nil {
		return nil, err
	}
	return store, nil
}

func readDataset(dir, name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse dataset %s: %w", name, err)
	}
	return nil
}

func (s *Store) buildIndexes() error {
	for i := range s.Subjects {
		subject := &s.Subjects[i]
		if err := subject.validate(i); err != nil {
			return err
		}
		s.subjectByCode[subject.Code] = subject

		name := strings.ToUpper(strings.TrimSpace(subject.NameEN))
		if name == "" {
			continue
		}
		// Duplicate names keep the position of the first occurrence but
		// resolve to the last subject loaded with that name.
		if _, exists := s.subjectByName[name]; !exists {
			s.nameIndex = append(s.nameIndex, NamedSubject{Name: name})
		}
		s.subjectByName[name] = subject
	}
	for i := range s.nameIndex {
		s.nameIndex[i].Subject = s.subjectByName[s.nameIndex[i].Name]
	}

	for i := range s.HardSkills {
		if err := s.HardSkills[i].validate("hard", i); err != nil {
			return err
		}
		s.hardSkillByID[s.HardSkills[i].ID] = &s.HardSkills[i]
	}
	for i := range s.SoftSkills {
		if err := s.SoftSkills[i].validate("soft", i); err != nil {
			return err
		}
		s.softSkillByID[s.SoftSkills[i].ID] = &s.SoftSkills[i]
	}
	for i := range s.Jobs {
		if err := s.Jobs[i].validate(i); err != nil {
			return err
		}
	}
	return nil
}

// SubjectByCode returns the subject with the exact course code, or nil.
func (s *Store) SubjectByCode(code string) *Subject {
	return s.subjectByCode[code]
}

// SubjectByName returns the subject whose upper-cased trimmed English name
// equals name exactly, or nil.
func (s *Store) SubjectByName(name string) *Subject {
	return s.subjectByName[strings.ToUpper(strings.TrimSpace(name))]
}

// SubjectNameIndex returns the ordered name index for containment scans.
// Callers must not mutate the returned slice.
func (s *Store) SubjectNameIndex() []NamedSubject {
	return s.nameIndex
}

// HardSkillLevel returns the level description for a hard skill, or zero
// values when the skill or level is not described.
func (s *Store) HardSkillLevel(skillID string, level int) LevelDescription {
	return skillLevel(s.hardSkillByID[skillID], level)
}

// SoftSkillLevel returns the level description for a soft skill, or zero
// values when the skill or level is not described.
func (s *Store) SoftSkillLevel(skillID string, level int) LevelDescription {
	return skillLevel(s.softSkillByID[skillID], level)
}

func skillLevel(skill *Skill, level int) LevelDescription {
	if skill == nil {
		return LevelDescription{}
	}
	return skill.Levels[strconv.Itoa(level)]
}
