// Package integration provides CLI integration tests for rolodex.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// rolodexBin is the path to the built rolodex binary.
	rolodexBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetRolodexBin sets the path to the rolodex binary (called from TestMain).
func SetRolodexBin(path string) {
	rolodexBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config
// directory and store file.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	StoreFile string
}

// NewTestEnv creates a new isolated test environment. The config pins a US
// default region so national-format phone numbers parse deterministically.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build rolodex: %v", buildErr)
	}
	if rolodexBin == "" {
		t.Fatal("rolodex binary not built (rolodexBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	storeFile := filepath.Join(tempDir, "data", "contacts.json")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "default_region: US\nlog_level: warn\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		StoreFile: storeFile,
	}
}

// CmdResult holds the result of a rolodex command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunRolodex executes the rolodex CLI with the given arguments.
func (e *TestEnv) RunRolodex(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--file", e.StoreFile}, args...)
	return e.runCmd(exec.Command(rolodexBin, allArgs...))
}

// RunRolodexEnv executes the rolodex CLI without the --file override, with
// extra environment variables appended to the process environment. Used to
// exercise the env/config store-file precedence.
func (e *TestEnv) RunRolodexEnv(extraEnv []string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(rolodexBin, allArgs...)
	cmd.Env = append(os.Environ(), extraEnv...)
	return e.runCmd(cmd)
}

func (e *TestEnv) runCmd(cmd *exec.Cmd) CmdResult {
	e.t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run rolodex: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunRolodex executes the rolodex CLI and fails the test on non-zero exit.
func (e *TestEnv) MustRunRolodex(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunRolodex(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("rolodex %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Contact mirrors the CLI's JSON output for one record.
type Contact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Category     string `json:"category"`
	Notes        string `json:"notes"`
	LastModified string `json:"last_modified"`
}
