package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// flag values persist on the package-level command between runs
	defaults := map[string]string{"out": "", "seed": "0", "quiet": "false"}
	for name, value := range defaults {
		if err := rootCmd.PersistentFlags().Set(name, value); err != nil {
			t.Fatalf("Failed to reset flag %s: %v", name, err)
		}
	}
	rootCmd.Flags().Set("version", "false")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootWritesScriptToStdout(t *testing.T) {
	stdout, stderr, err := execute(t, "--seed", "42", "--quiet")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	if !strings.HasPrefix(stdout, "-- Insert Students\n") {
		t.Errorf("Expected script to start with the Students section, got %.60s", stdout)
	}
	if n := strings.Count(stdout, "INSERT INTO "); n != 189 {
		t.Errorf("Expected 189 insert statements, got %d", n)
	}
	if stderr != "" {
		t.Errorf("Expected no progress output in quiet mode, got:\n%s", stderr)
	}
}

func TestRootSeedIsReproducible(t *testing.T) {
	first, _, err := execute(t, "--seed", "7", "-q")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	second, _, err := execute(t, "--seed", "7", "-q")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if first != second {
		t.Error("Expected identical output for the same seed")
	}
}

func TestRootLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "--seed", "3")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if strings.Contains(stdout, "rows") {
		t.Error("Expected progress output to stay off stdout")
	}
	if !strings.Contains(stderr, "Enrollments (25 rows)") {
		t.Errorf("Expected progress on stderr, got:\n%s", stderr)
	}
}

func TestRootWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.sql")

	stdout, stderr, err := execute(t, "--seed", "5", "--out", path)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got %.60s", stdout)
	}
	if !strings.Contains(stderr, "Script written to "+path) {
		t.Errorf("Expected file notice on stderr, got:\n%s", stderr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if n := strings.Count(string(data), "INSERT INTO Grades "); n != 9 {
		t.Errorf("Expected 9 grade rows in file, got %d", n)
	}
}

func TestRootRejectsNegativeSeed(t *testing.T) {
	if _, _, err := execute(t, "--seed=-4", "-q"); err == nil {
		t.Error("Expected negative seed to fail")
	}
}

func TestConfigCommand(t *testing.T) {
	stdout, _, err := execute(t, "config", "--seed", "9")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	for _, want := range []string{"seed: 9", "students: 60", "student_domain: example.com", "- Fall 2025"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected config output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if strings.TrimSpace(stdout) != "uniseed version "+Version {
		t.Errorf("Unexpected version output: %s", stdout)
	}
}
