package dto

import "github.com/sagarshinde/studyhub/internal/app/models"

// TaxonomyResponse is the static top of the hierarchy, used to populate
// the dependent selection controls.
type TaxonomyResponse struct {
	Courses []models.Course       `json:"courses"`
	Years   []models.Year         `json:"years"`
	Types   []models.ResourceType `json:"types"`
}

// SemestersResponse lists the fixed semester pair for a year.
type SemestersResponse struct {
	Year      models.Year       `json:"year"`
	Semesters []models.Semester `json:"semesters"`
}

// SubjectsResponse lists the syllabus subjects for a course and semester.
type SubjectsResponse struct {
	Course   models.Course   `json:"course"`
	Semester models.Semester `json:"semester"`
	Subjects []string        `json:"subjects"`
}

// ContactResponse exposes the admin contact details.
type ContactResponse struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}
