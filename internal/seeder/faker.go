package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/uniseed/internal/config"
	"github.com/jaswdr/faker"
)

type DataGenerator struct {
	rand    *rand.Rand
	faker   faker.Faker
	dataset config.Dataset
	now     func() time.Time
}

// NewDataGenerator seeds faker and the choice source from one rand.Source,
// so a given seed always yields the same script. A zero seed uses the clock.
func NewDataGenerator(dataset config.Dataset, seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.NewSource(seed)

	return &DataGenerator{
		rand:    rand.New(src),
		faker:   faker.NewWithSeed(src),
		dataset: dataset,
		now:     time.Now,
	}
}

func (g *DataGenerator) choice(options []string) string {
	return options[g.rand.Intn(len(options))]
}

// between returns a uniform integer in [1, n].
func (g *DataGenerator) between(n int) int {
	return g.rand.Intn(n) + 1
}

func (g *DataGenerator) generateName() (string, string) {
	person := g.faker.Person()
	return person.FirstName(), person.LastName()
}

func (g *DataGenerator) generatePhone() string {
	return g.faker.Phone().Number()
}

func generateEmail(first, last string, seq int, domain string) string {
	return fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), seq, domain)
}

// generateDate picks a calendar day within the past year, today included.
func (g *DataGenerator) generateDate() time.Time {
	now := g.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(-1, 0, 0)
	span := int(today.Sub(start).Hours()/24 + 0.5)
	return start.AddDate(0, 0, g.rand.Intn(span+1))
}

func (g *DataGenerator) Student(seq int) Student {
	first, last := g.generateName()
	return Student{
		FirstName: first,
		LastName:  last,
		Email:     generateEmail(first, last, seq, g.dataset.StudentDomain),
		Phone:     g.generatePhone(),
		Major:     g.choice(g.dataset.Majors),
		Year:      g.choice(g.dataset.Years),
	}
}

func (g *DataGenerator) Instructor(seq int) Instructor {
	first, last := g.generateName()
	return Instructor{
		FirstName:  first,
		LastName:   last,
		Email:      generateEmail(first, last, seq, g.dataset.InstructorDomain),
		Department: g.choice(g.dataset.Departments),
	}
}

func (g *DataGenerator) Course(seq int) Course {
	dept := g.choice(g.dataset.Departments)
	prefix := strings.ToUpper(string([]rune(dept)[:2]))
	return Course{
		Code:       fmt.Sprintf("%s%d", prefix, 100+seq),
		Title:      fmt.Sprintf("Intro to %s %d", dept, seq),
		Credits:    g.dataset.Credits[g.rand.Intn(len(g.dataset.Credits))],
		Department: dept,
	}
}

func (g *DataGenerator) Offering() Offering {
	return Offering{
		CourseID:     g.between(g.dataset.Counts.Courses),
		Semester:     g.choice(g.dataset.Semesters),
		InstructorID: g.between(g.dataset.Counts.Instructors),
		Schedule:     g.choice(g.dataset.Schedules),
	}
}

// Grades is the fixed grade scale; it does not touch the random source.
func (g *DataGenerator) Grades() []Grade {
	grades := make([]Grade, len(g.dataset.Grades))
	for i, gr := range g.dataset.Grades {
		grades[i] = Grade{ID: i + 1, Letter: gr.Letter, Score: Score(gr.Score)}
	}
	return grades
}

func (g *DataGenerator) Enrollment() Enrollment {
	e := Enrollment{
		StudentID:  g.between(g.dataset.Counts.Students),
		OfferingID: g.between(g.dataset.Counts.Offerings),
		Date:       g.generateDate(),
	}
	if g.rand.Float64() < g.dataset.GradedProbability {
		id := g.between(len(g.dataset.Grades))
		e.GradeID = &id
	}
	return e
}

func (g *DataGenerator) Prerequisites() ([]Prerequisite, error) {
	return samplePairs(g.rand, g.dataset.Counts.Courses, g.dataset.Counts.Prerequisites)
}
