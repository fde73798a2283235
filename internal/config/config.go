package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Runtime Runtime `json:"runtime" yaml:"runtime"`
	Dataset Dataset `json:"dataset" yaml:"dataset"`
}

// Runtime is the part of the configuration that may come from flags,
// environment or a config file. It never changes what gets generated.
type Runtime struct {
	Output string `json:"output" yaml:"output" mapstructure:"output"` // empty means stdout
	Seed   int64  `json:"seed" yaml:"seed" mapstructure:"seed"`       // 0 means time-seeded
	Quiet  bool   `json:"quiet" yaml:"quiet" mapstructure:"quiet"`
}

type Counts struct {
	Students      int `json:"students" yaml:"students"`
	Instructors   int `json:"instructors" yaml:"instructors"`
	Courses       int `json:"courses" yaml:"courses"`
	Offerings     int `json:"offerings" yaml:"offerings"`
	Enrollments   int `json:"enrollments" yaml:"enrollments"`
	Prerequisites int `json:"prerequisites" yaml:"prerequisites"`
}

type Grade struct {
	Letter string  `json:"letter" yaml:"letter"`
	Score  float64 `json:"score" yaml:"score"`
}

// Dataset holds the fixed constants that shape the generated script.
type Dataset struct {
	Counts            Counts   `json:"counts" yaml:"counts"`
	Years             []string `json:"years" yaml:"years"`
	Majors            []string `json:"majors" yaml:"majors"`
	Departments       []string `json:"departments" yaml:"departments"`
	Semesters         []string `json:"semesters" yaml:"semesters"`
	Schedules         []string `json:"schedules" yaml:"schedules"`
	Credits           []int    `json:"credits" yaml:"credits"`
	Grades            []Grade  `json:"grades" yaml:"grades"`
	GradedProbability float64  `json:"graded_probability" yaml:"graded_probability"`
	StudentDomain     string   `json:"student_domain" yaml:"student_domain"`
	InstructorDomain  string   `json:"instructor_domain" yaml:"instructor_domain"`
}

func DefaultDataset() Dataset {
	departments := []string{"Computer Science", "Mathematics", "Engineering", "Physics", "Biology", "Chemistry", "Economics"}

	return Dataset{
		Counts: Counts{
			Students:      60,
			Instructors:   15,
			Courses:       60,
			Offerings:     15,
			Enrollments:   25,
			Prerequisites: 5,
		},
		Years:       []string{"Year 1", "Year 2", "Year 3", "Year 4"},
		Majors:      append([]string(nil), departments...),
		Departments: departments,
		Semesters:   []string{"Fall 2025", "Spring 2026", "Summer 2026"},
		Schedules: []string{
			"Mon/Wed 10:00-11:30",
			"Tue/Thu 09:00-10:30",
			"Mon/Wed/Fri 11:00-12:00",
			"Tue/Thu 13:00-14:30",
			"Mon/Wed 14:00-15:30",
		},
		Credits: []int{3, 4},
		Grades: []Grade{
			{"A", 4.00}, {"A-", 3.70}, {"B+", 3.30}, {"B", 3.00},
			{"B-", 2.70}, {"C+", 2.30}, {"C", 2.00}, {"D", 1.00}, {"F", 0.00},
		},
		GradedProbability: 0.7,
		StudentDomain:     "example.com",
		InstructorDomain:  "university.edu",
	}
}

func Default() *Config {
	return &Config{Dataset: DefaultDataset()}
}

// Load reads the runtime envelope from viper. The dataset is always the
// built-in one.
func Load() (*Config, error) {
	cfg := Default()

	if err := viper.Unmarshal(&cfg.Runtime); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Runtime.Seed < 0 {
		return fmt.Errorf("seed cannot be negative: %d", c.Runtime.Seed)
	}
	return c.Dataset.Validate()
}

func (d Dataset) Validate() error {
	counts := map[string]int{
		"students":    d.Counts.Students,
		"instructors": d.Counts.Instructors,
		"courses":     d.Counts.Courses,
		"offerings":   d.Counts.Offerings,
	}
	for name, n := range counts {
		if n < 1 {
			return fmt.Errorf("%s count must be at least 1, got %d", name, n)
		}
	}
	if d.Counts.Enrollments < 0 {
		return fmt.Errorf("enrollments count cannot be negative: %d", d.Counts.Enrollments)
	}
	if d.Counts.Prerequisites < 0 {
		return fmt.Errorf("prerequisites count cannot be negative: %d", d.Counts.Prerequisites)
	}

	// Course codes carry exactly three digits.
	if last := 100 + d.Counts.Courses; last > 999 {
		return fmt.Errorf("courses count %d would produce course code number %d", d.Counts.Courses, last)
	}

	pairs := d.Counts.Courses * (d.Counts.Courses - 1)
	if d.Counts.Prerequisites > pairs {
		return fmt.Errorf("cannot draw %d distinct prerequisite pairs from %d courses (only %d exist)",
			d.Counts.Prerequisites, d.Counts.Courses, pairs)
	}

	sets := []struct {
		name string
		n    int
	}{
		{"years", len(d.Years)},
		{"majors", len(d.Majors)},
		{"departments", len(d.Departments)},
		{"semesters", len(d.Semesters)},
		{"schedules", len(d.Schedules)},
		{"credits", len(d.Credits)},
		{"grades", len(d.Grades)},
	}
	for _, s := range sets {
		if s.n == 0 {
			return fmt.Errorf("%s cannot be empty", s.name)
		}
	}

	for _, dept := range d.Departments {
		if len([]rune(dept)) < 2 {
			return fmt.Errorf("department name %q is too short for a course code", dept)
		}
	}

	if d.GradedProbability < 0 || d.GradedProbability > 1 {
		return fmt.Errorf("graded_probability must be within [0, 1], got %v", d.GradedProbability)
	}
	if d.StudentDomain == "" || d.InstructorDomain == "" {
		return fmt.Errorf("email domains cannot be empty")
	}

	return nil
}

// YAML renders the effective configuration, dataset included.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
