// Package e2e provides end-to-end tests for the newpost CLI.
package e2e

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newpostBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "newpost-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	newpostBinary = filepath.Join(tmpDir, "newpost")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", newpostBinary, "../../cmd/newpost")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build newpost binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runNewpost runs the newpost binary in workDir with an isolated config file.
func runNewpost(t *testing.T, workDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, newpostBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "NEWPOST_CONFIG="+filepath.Join(workDir, "config.yaml"))

	stdoutBytes, err := cmd.Output()
	var stderrBytes []byte
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderrBytes = exitErr.Stderr
	}

	return string(stdoutBytes), string(stderrBytes), err
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 0
}

func TestE2E_CreatePost(t *testing.T) {
	tmpDir := t.TempDir()

	stdout, stderr, err := runNewpost(t, tmpDir, "-d", "2023-05-01_14:30:00", "Hello", "World")
	require.NoError(t, err, "stderr: %s", stderr)

	path := filepath.Join("src", "posts", "2023-05-01-143000-hello-world.slim")
	assert.FileExists(t, filepath.Join(tmpDir, path))
	assert.Contains(t, stdout, "The file is created at:")

	data, err := os.ReadFile(filepath.Join(tmpDir, path))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".meta-data datetime 2023-05-01 14:30:00\n")
}

func TestE2E_CreateSlides(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, err := runNewpost(t, tmpDir, "-c", "slides", "-d", "2023-05-01", "Talk")
	require.NoError(t, err, "stderr: %s", stderr)

	matches, err := filepath.Glob(filepath.Join(tmpDir, "src", "slides", "2023-05-01-*-talk.slim"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestE2E_MissingTitle(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, err := runNewpost(t, tmpDir)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.Contains(t, stderr, "You should provide the title.")
	assert.NoDirExists(t, filepath.Join(tmpDir, "src"))
}

func TestE2E_BookmarkRequiresWebsite(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, err := runNewpost(t, tmpDir, "-c", "bm", "Go")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.Contains(t, stderr, "You should provide the website if the category is bookmark.")
}

func TestE2E_Version(t *testing.T) {
	stdout, _, err := runNewpost(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "newpost ")
}
