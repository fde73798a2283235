package seeder

import "time"

// Row is a single generated record, values in column order.
type Row interface {
	Values() []interface{}
}

type TableInfo struct {
	Name         string
	Columns      []string
	Dependencies []string
	generate     func() ([]Row, error)
}

type Student struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Major     string
	Year      string
}

func (s Student) Values() []interface{} {
	return []interface{}{s.FirstName, s.LastName, s.Email, s.Phone, s.Major, s.Year}
}

type Instructor struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
}

func (i Instructor) Values() []interface{} {
	return []interface{}{i.FirstName, i.LastName, i.Email, i.Department}
}

type Course struct {
	Code       string
	Title      string
	Credits    int
	Department string
}

func (c Course) Values() []interface{} {
	return []interface{}{c.Code, c.Title, c.Credits, c.Department}
}

type Offering struct {
	CourseID     int
	Semester     string
	InstructorID int
	Schedule     string
}

func (o Offering) Values() []interface{} {
	return []interface{}{o.CourseID, o.Semester, o.InstructorID, o.Schedule}
}

type Grade struct {
	ID     int
	Letter string
	Score  Score
}

func (g Grade) Values() []interface{} {
	return []interface{}{g.ID, g.Letter, g.Score}
}

// Score is a grade point value, rendered with at least one decimal.
type Score float64

type Enrollment struct {
	StudentID  int
	OfferingID int
	Date       time.Time
	GradeID    *int // nil when the enrollment has no grade yet
}

func (e Enrollment) Values() []interface{} {
	var grade interface{}
	if e.GradeID != nil {
		grade = *e.GradeID
	}
	return []interface{}{e.StudentID, e.OfferingID, Date(e.Date), grade}
}

// Date renders as a quoted calendar date.
type Date time.Time

type Prerequisite struct {
	CourseID       int
	PrerequisiteID int
}

func (p Prerequisite) Values() []interface{} {
	return []interface{}{p.CourseID, p.PrerequisiteID}
}
