package taxonomy

import "github.com/sagarshinde/studyhub/internal/app/models"

// Static reference data for the course/year/semester/subject hierarchy.
// Loaded once, never mutated.

// Courses lists the degree programmes in display order.
var Courses = []models.Course{models.CourseCS, models.CourseIT}

// Years lists the academic years in display order.
var Years = []models.Year{models.YearFirst, models.YearSecond, models.YearThird}

// ResourceTypes lists the material kinds accepted by the catalog.
var ResourceTypes = []models.ResourceType{models.TypeBook, models.TypeNote, models.TypePaper}

// semesters maps each year to its fixed semester pair.
var semesters = map[models.Year][]models.Semester{
	models.YearFirst:  {models.Semester1, models.Semester2},
	models.YearSecond: {models.Semester3, models.Semester4},
	models.YearThird:  {models.Semester5, models.Semester6},
}

// subjects maps (course, semester) to the syllabus subject list.
var subjects = map[models.Course]map[models.Semester][]string{
	models.CourseCS: {
		models.Semester1: {"Computer Organization", "Python Programming", "Calculus", "Statistics"},
		models.Semester2: {"C Programming", "Linux", "Data Structures", "Green Computing"},
		models.Semester3: {"Theory of Computation", "Core Java", "Operating Systems"},
		models.Semester4: {"Algorithms", "Advanced Java", "Computer Networks"},
		models.Semester5: {"AI", "Software Testing", "Web Services"},
		models.Semester6: {"Data Science", "Cloud Computing", "Information Retrieval"},
	},
	models.CourseIT: {
		models.Semester1: {"Imperative Programming", "Digital Electronics", "Communication Skills"},
		models.Semester2: {"Object Oriented Programming", "Microprocessor Architecture", "Web Programming"},
		models.Semester3: {"Python", "Data Structures", "Computer Networks"},
		models.Semester4: {"Core Java", "Embedded Systems", "Software Engineering"},
		models.Semester5: {"Network Security", "ASP.NET", "Linux Administration"},
		models.Semester6: {"Quality Assurance", "Security in Computing", "Business Intelligence"},
	},
}

// SemestersFor returns the fixed semester pair for a year. Unknown years
// yield an empty slice.
func SemestersFor(year models.Year) []models.Semester {
	sems, ok := semesters[year]
	if !ok {
		return []models.Semester{}
	}
	out := make([]models.Semester, len(sems))
	copy(out, sems)
	return out
}

// SubjectsFor returns the subject list for a course and semester. An
// undefined pair yields an empty slice rather than an error.
func SubjectsFor(course models.Course, semester models.Semester) []string {
	bySemester, ok := subjects[course]
	if !ok {
		return []string{}
	}
	subs, ok := bySemester[semester]
	if !ok {
		return []string{}
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// Validate reports whether the classification is internally consistent:
// the semester must belong to the year's pair and the subject must appear
// in the syllabus for the course and semester.
func Validate(course models.Course, year models.Year, semester models.Semester, subject string) bool {
	validSemester := false
	for _, s := range SemestersFor(year) {
		if s == semester {
			validSemester = true
			break
		}
	}
	if !validSemester {
		return false
	}

	for _, s := range SubjectsFor(course, semester) {
		if s == subject {
			return true
		}
	}
	return false
}
