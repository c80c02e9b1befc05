// Package gitops versions the data directory with git so every record
// mutation leaves a traceable commit.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repo wraps git operations on a data directory.
type Repo struct {
	dir string
}

// New returns a Repo for the given directory.
func New(dir string) Repo {
	return Repo{dir: dir}
}

// Init initializes a new git repository in the data directory.
func (r Repo) Init() error {
	if _, err := r.run("init"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// IsRepo reports whether the data directory is a git repository.
func (r Repo) IsRepo() bool {
	_, err := os.Stat(filepath.Join(r.dir, ".git"))
	return err == nil
}

// CommitAll stages everything and commits with the given author. Returns
// the short hash of the new commit.
func (r Repo) CommitAll(message, authorName, authorEmail string) (string, error) {
	if _, err := r.run("add", "-A"); err != nil {
		return "", fmt.Errorf("git add: %w", err)
	}

	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)
	if _, err := r.run("commit", "-m", message, "--author", author); err != nil {
		return "", fmt.Errorf("git commit: %w", err)
	}

	out, err := r.run("rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (r Repo) run(args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s: %s", strings.Join(args, " "), strings.TrimSpace(string(out)))
	}
	return out, nil
}
