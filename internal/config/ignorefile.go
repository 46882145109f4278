package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// LoadIgnoreFile reads path and returns the entries to add to the ignore
// list: trimmed, non-empty lines that are not comments and not already
// targets. Entries are exact bare names, not glob patterns. Lines read before
// a read failure are returned along with the error.
func LoadIgnoreFile(path string, targets []string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if slices.Contains(targets, line) {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

// MergeIgnoreFile appends the entries of the ignore file at path to the
// ignore list when the run has the ignore file enabled. A missing file is
// logged and is not an error; other read failures are logged and the lines
// read so far are kept.
func (inv *Invocation) MergeIgnoreFile(path string, logger *slog.Logger) {
	if inv.Action != ActionRun || !inv.Config.UseIgnoreFile {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := LoadIgnoreFile(path, inv.Config.Targets)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("ignore file not found", "path", path)
	case err != nil:
		logger.Warn("failed to read ignore file", "path", path, "error", err)
	}
	if len(entries) > 0 {
		logger.Debug("merged ignore file", "path", path, "entries", len(entries))
	}
	inv.Config.Ignore = append(inv.Config.Ignore, entries...)
}
