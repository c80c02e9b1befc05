package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/auditlog"
	"github.com/ledgerline-dev/ledgerline/internal/config"
	"github.com/ledgerline-dev/ledgerline/internal/gitops"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/records"
)

const dateFormat = "2006-01-02"

// openProject resolves the data directory and loads its config and
// records service.
func openProject(dir string) (string, *config.Config, *records.Service, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return "", nil, nil, err
	}

	return absDir, cfg, records.NewService(absDir), nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag; empty means zero time.
func parseDateFlag(value, flag string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", flag, value)
	}
	return t, nil
}

// granularityFor resolves the granularity flag, falling back to the
// configured default.
func granularityFor(flagValue string, cfg *config.Config) (period.Type, error) {
	value := flagValue
	if value == "" {
		value = cfg.Reporting.DefaultGranularity
	}
	t := period.Type(value)
	if !period.ValidType(t) {
		return "", fmt.Errorf("unknown granularity %q: expected day, week, month, quarter or year", value)
	}
	return t, nil
}

// recordMutation commits the data directory (when auto-commit is on) and
// appends an audit log entry. Audit failures are warnings, not errors:
// the record itself is already saved.
func recordMutation(root string, cfg *config.Config, action, recordID, details string) {
	hash := ""
	if cfg.Git.AutoCommit {
		repo := gitops.New(root)
		if repo.IsRepo() {
			h, err := repo.CommitAll(action+" "+recordID, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: auto-commit failed: %v\n", err)
			} else {
				hash = h
			}
		}
	}

	err := auditlog.Append(root, []auditlog.Entry{{
		Timestamp:  time.Now(),
		Action:     action,
		RecordID:   recordID,
		Details:    details,
		CommitHash: hash,
	}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}
}
