package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/taxonomy"
	"github.com/sagarshinde/studyhub/internal/config"
)

// TaxonomyController serves the static classification hierarchy used by
// the dependent selection controls, plus the admin contact details.
type TaxonomyController struct {
	contact dto.ContactResponse
}

// NewTaxonomyController creates a new TaxonomyController
func NewTaxonomyController(cfg *config.Config) *TaxonomyController {
	return &TaxonomyController{
		contact: dto.ContactResponse{
			Name:   cfg.Contact.Name,
			Mobile: cfg.Contact.Mobile,
			Email:  cfg.Contact.Email,
		},
	}
}

// Overview returns courses, years and resource types.
// GET /taxonomy
func (c *TaxonomyController) Overview(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.TaxonomyResponse{
		Courses: taxonomy.Courses,
		Years:   taxonomy.Years,
		Types:   taxonomy.ResourceTypes,
	}})
}

// Semesters returns the fixed pair for a year.
// GET /taxonomy/semesters?year=
func (c *TaxonomyController) Semesters(ctx *gin.Context) {
	year := models.Year(ctx.Query("year"))
	if year == "" {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "year query parameter is required"),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SemestersResponse{
		Year:      year,
		Semesters: taxonomy.SemestersFor(year),
	}})
}

// Subjects returns the syllabus list for a course and semester. An
// undefined pair yields an empty list, not an error.
// GET /taxonomy/subjects?course=&semester=
func (c *TaxonomyController) Subjects(ctx *gin.Context) {
	course := models.Course(ctx.Query("course"))
	semester := models.Semester(ctx.Query("semester"))
	if course == "" || semester == "" {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "course and semester query parameters are required"),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SubjectsResponse{
		Course:   course,
		Semester: semester,
		Subjects: taxonomy.SubjectsFor(course, semester),
	}})
}

// Contact returns the admin contact details.
// GET /contact
func (c *TaxonomyController) Contact(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.contact})
}
