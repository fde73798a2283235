package seeder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Lumos-Labs-HQ/uniseed/internal/config"
	"github.com/fatih/color"
)

type Seeder struct {
	config    *config.Config
	generator *DataGenerator
	graph     *DependencyGraph
	log       io.Writer
}

// NewSeeder validates cfg and registers the course-enrollment tables.
// Progress is written to log; pass io.Discard to silence it.
func NewSeeder(cfg *config.Config, log io.Writer) (*Seeder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil || cfg.Runtime.Quiet {
		log = io.Discard
	}

	s := &Seeder{
		config:    cfg,
		generator: NewDataGenerator(cfg.Dataset, cfg.Runtime.Seed),
		graph:     NewDependencyGraph(),
		log:       log,
	}
	for _, table := range s.tables() {
		s.graph.AddTable(table)
	}
	return s, nil
}

func (s *Seeder) tables() []*TableInfo {
	counts := s.config.Dataset.Counts
	g := s.generator

	return []*TableInfo{
		{
			Name:    "Students",
			Columns: []string{"FirstName", "LastName", "Email", "Phone", "Major", "Year"},
			generate: func() ([]Row, error) {
				return repeat(counts.Students, func(seq int) Row { return g.Student(seq) }), nil
			},
		},
		{
			Name:    "Instructors",
			Columns: []string{"FirstName", "LastName", "Email", "Department"},
			generate: func() ([]Row, error) {
				return repeat(counts.Instructors, func(seq int) Row { return g.Instructor(seq) }), nil
			},
		},
		{
			Name:    "Courses",
			Columns: []string{"CourseCode", "Title", "Credits", "Department"},
			generate: func() ([]Row, error) {
				return repeat(counts.Courses, func(seq int) Row { return g.Course(seq) }), nil
			},
		},
		{
			Name:         "CourseOfferings",
			Columns:      []string{"CourseID", "Semester", "InstructorID", "Schedule"},
			Dependencies: []string{"Courses", "Instructors"},
			generate: func() ([]Row, error) {
				return repeat(counts.Offerings, func(int) Row { return g.Offering() }), nil
			},
		},
		{
			Name:    "Grades",
			Columns: []string{"Grade_ID", "Grade", "Grade_Score"},
			generate: func() ([]Row, error) {
				grades := g.Grades()
				rows := make([]Row, len(grades))
				for i, gr := range grades {
					rows[i] = gr
				}
				return rows, nil
			},
		},
		{
			Name:         "Enrollments",
			Columns:      []string{"StudentID", "OfferingID", "EnrollmentDate", "Grade_ID"},
			Dependencies: []string{"Students", "CourseOfferings", "Grades"},
			generate: func() ([]Row, error) {
				return repeat(counts.Enrollments, func(int) Row { return g.Enrollment() }), nil
			},
		},
		{
			Name:         "Prerequisites",
			Columns:      []string{"CourseID", "PrerequisiteID"},
			Dependencies: []string{"Courses"},
			generate: func() ([]Row, error) {
				pairs, err := g.Prerequisites()
				if err != nil {
					return nil, err
				}
				rows := make([]Row, len(pairs))
				for i, p := range pairs {
					rows[i] = p
				}
				return rows, nil
			},
		},
	}
}

// repeat calls fn for sequence numbers 1..n.
func repeat(n int, fn func(seq int) Row) []Row {
	rows := make([]Row, 0, n)
	for seq := 1; seq <= n; seq++ {
		rows = append(rows, fn(seq))
	}
	return rows
}

// Seed writes the full insert script to out, one section per table.
func (s *Seeder) Seed(out io.Writer) error {
	color.New(color.FgCyan).Fprintln(s.log, "🌱 Generating course-enrollment seed data...")

	order, err := s.graph.BuildInsertionOrder()
	if err != nil {
		return fmt.Errorf("failed to build insertion order: %w", err)
	}
	color.New(color.FgCyan).Fprintf(s.log, "📋 Insertion order: %s\n", strings.Join(order, " → "))

	w := bufio.NewWriter(out)
	total := 0
	for i, tableName := range order {
		table := s.graph.Table(tableName)

		rows, err := table.generate()
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", tableName, err)
		}

		if err := writeSection(w, table, rows, i > 0); err != nil {
			return fmt.Errorf("failed to write %s: %w", tableName, err)
		}
		color.New(color.FgWhite).Fprintf(s.log, "  📝 %s (%d rows)\n", tableName, len(rows))
		total += len(rows)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	color.New(color.FgGreen).Fprintf(s.log, "✅ Generated %d insert statements across %d tables\n", total, len(order))
	return nil
}

func writeSection(w *bufio.Writer, table *TableInfo, rows []Row, separate bool) error {
	if separate {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "-- Insert %s\n", table.Name); err != nil {
		return err
	}

	for _, row := range rows {
		stmt, err := InsertStatement(table.Name, table.Columns, row.Values())
		if err != nil {
			return err
		}
		if _, err := w.WriteString(stmt + "\n"); err != nil {
			return err
		}
	}
	return nil
}
