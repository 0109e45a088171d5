package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// Course is one of the two degree programmes the catalog covers.
type Course string

const (
	CourseCS Course = "BSc Computer Science"
	CourseIT Course = "BSc Information Technology"
)

// Year is the academic year of study.
type Year string

const (
	YearFirst  Year = "First Year"
	YearSecond Year = "Second Year"
	YearThird  Year = "Third Year"
)

// Semester is one of the six semesters across the three years.
type Semester string

const (
	Semester1 Semester = "Semester 1"
	Semester2 Semester = "Semester 2"
	Semester3 Semester = "Semester 3"
	Semester4 Semester = "Semester 4"
	Semester5 Semester = "Semester 5"
	Semester6 Semester = "Semester 6"
)

// ResourceType classifies the kind of study material.
type ResourceType string

const (
	TypeBook  ResourceType = "Book"
	TypeNote  ResourceType = "Note"
	TypePaper ResourceType = "Question Paper"
)

// ModerationStatus is the derived state of a resource in the approval
// workflow. Removal is not a stored status; a removed resource is simply
// absent from the catalog.
type ModerationStatus string

const (
	StatusPending   ModerationStatus = "PENDING"
	StatusPublished ModerationStatus = "PUBLISHED"
)
