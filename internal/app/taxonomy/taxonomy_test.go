package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarshinde/studyhub/internal/app/models"
)

func TestSemestersFor(t *testing.T) {
	tests := []struct {
		name string
		year models.Year
		want []models.Semester
	}{
		{"first year", models.YearFirst, []models.Semester{models.Semester1, models.Semester2}},
		{"second year", models.YearSecond, []models.Semester{models.Semester3, models.Semester4}},
		{"third year", models.YearThird, []models.Semester{models.Semester5, models.Semester6}},
		{"unknown year yields empty", models.Year("Fourth Year"), []models.Semester{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SemestersFor(tt.year))
		})
	}
}

func TestSubjectsFor(t *testing.T) {
	subjects := SubjectsFor(models.CourseCS, models.Semester2)
	assert.Equal(t, []string{"C Programming", "Linux", "Data Structures", "Green Computing"}, subjects)

	subjects = SubjectsFor(models.CourseIT, models.Semester5)
	assert.Equal(t, []string{"Network Security", "ASP.NET", "Linux Administration"}, subjects)
}

func TestSubjectsForUnknownPair(t *testing.T) {
	assert.Empty(t, SubjectsFor(models.Course("BSc Physics"), models.Semester1))
	assert.Empty(t, SubjectsFor(models.CourseCS, models.Semester("Semester 9")))
}

func TestSubjectsForReturnsACopy(t *testing.T) {
	first := SubjectsFor(models.CourseCS, models.Semester1)
	first[0] = "mutated"

	again := SubjectsFor(models.CourseCS, models.Semester1)
	assert.Equal(t, "Computer Organization", again[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		course   models.Course
		year     models.Year
		semester models.Semester
		subject  string
		want     bool
	}{
		{
			name:     "consistent classification",
			course:   models.CourseCS,
			year:     models.YearFirst,
			semester: models.Semester2,
			subject:  "Data Structures",
			want:     true,
		},
		{
			name:     "semester outside the year's pair",
			course:   models.CourseCS,
			year:     models.YearFirst,
			semester: models.Semester3,
			subject:  "Core Java",
			want:     false,
		},
		{
			name:     "subject from the other course",
			course:   models.CourseCS,
			year:     models.YearFirst,
			semester: models.Semester1,
			subject:  "Imperative Programming",
			want:     false,
		},
		{
			name:     "subject from a different semester",
			course:   models.CourseCS,
			year:     models.YearSecond,
			semester: models.Semester3,
			subject:  "Algorithms",
			want:     false,
		},
		{
			name:     "same subject name exists in both courses",
			course:   models.CourseIT,
			year:     models.YearSecond,
			semester: models.Semester3,
			subject:  "Data Structures",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.course, tt.year, tt.semester, tt.subject))
		})
	}
}
