package services

import (
	"strings"

	"go2tech/transcript-analyzer/internal/refdata"
)

type SubjectMatcherService interface {
	Match(courseCode, courseName string) *refdata.Subject
}

type subjectMatcherService struct {
	store *refdata.Store
}

func NewSubjectMatcherService(store *refdata.Store) SubjectMatcherService {
	return &subjectMatcherService{store: store}
}

// Match resolves a parsed course to a reference subject. First hit wins:
// exact course code, then exact name, then substring containment in either
// direction over the store's ordered name index. The containment pass is a
// heuristic; ties resolve to the first entry in dataset insertion order,
// which keeps results reproducible across runs.
func (s *subjectMatcherService) Match(courseCode, courseName string) *refdata.Subject {
	if subject := s.store.SubjectByCode(courseCode); subject != nil {
		return subject
	}

	nameUpper := strings.ToUpper(strings.TrimSpace(courseName))
	if subject := s.store.SubjectByName(nameUpper); subject != nil {
		return subject
	}

	for _, entry := range s.store.SubjectNameIndex() {
		if strings.Contains(entry.Name, nameUpper) || strings.Contains(nameUpper, entry.Name) {
			return entry.Subject
		}
	}

	return nil
}
