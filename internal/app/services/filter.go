package services

import (
	"strings"

	"github.com/sagarshinde/studyhub/internal/app/models"
)

// FilterCriteria is one browse query. Every field is optional: a zero
// value matches everything. Active criteria combine with AND; the search
// text matches title or subject.
type FilterCriteria struct {
	Course   models.Course
	Year     models.Year
	Semester models.Semester
	Subject  string
	Type     models.ResourceType
	Search   string
}

// FilterResources evaluates the criteria against a snapshot and returns
// the matching subsequence in the input order. It is a pure function: no
// memory between calls, input never mutated. Callers decide what goes in;
// public views must pass the approved-only subset, the moderation view
// passes everything.
func FilterResources(resources []models.Resource, criteria FilterCriteria) []models.Resource {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	matched := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if criteria.Course != "" && r.Course != criteria.Course {
			continue
		}
		if criteria.Year != "" && r.Year != criteria.Year {
			continue
		}
		if criteria.Semester != "" && r.Semester != criteria.Semester {
			continue
		}
		if criteria.Subject != "" && r.Subject != criteria.Subject {
			continue
		}
		if criteria.Type != "" && r.Type != criteria.Type {
			continue
		}
		if search != "" {
			title := strings.ToLower(r.Title)
			subject := strings.ToLower(r.Subject)
			if !strings.Contains(title, search) && !strings.Contains(subject, search) {
				continue
			}
		}
		matched = append(matched, r)
	}
	return matched
}

// ApprovedOnly restricts a snapshot to published records, preserving
// order. This is the projection every publicly reachable view reads.
func ApprovedOnly(resources []models.Resource) []models.Resource {
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if r.Approved {
			out = append(out, r)
		}
	}
	return out
}
