// Package purge walks a directory tree and removes entries whose bare name
// is a configured target, pruning ignored names along the way.
package purge

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/philipseo/purge-deps/internal/config"
	"github.com/philipseo/purge-deps/internal/fsops"
)

// Options tunes a Purger. The zero value deletes through the os package and
// logs to slog.Default.
type Options struct {
	Deleter fsops.Deleter
	Logger  *slog.Logger

	// OnRemove is called right before a matched entry is removed.
	OnRemove func(path string, isDir bool)
}

// Stats counts what a walk removed.
type Stats struct {
	Files int
	Dirs  int
}

// Total returns the number of removed entries.
func (s Stats) Total() int {
	return s.Files + s.Dirs
}

// Purger performs a single depth-first walk over cfg.Root.
type Purger struct {
	cfg      config.Config
	deleter  fsops.Deleter
	logger   *slog.Logger
	onRemove func(path string, isDir bool)
	stats    Stats
}

// New creates a Purger for cfg.
func New(cfg config.Config, opts Options) *Purger {
	p := &Purger{
		cfg:      cfg,
		deleter:  opts.Deleter,
		logger:   opts.Logger,
		onRemove: opts.OnRemove,
	}
	if p.deleter == nil {
		p.deleter = fsops.OSDeleter{}
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Run walks the root directory. The first listing or removal failure stops
// the walk and is returned together with the stats gathered so far; removals
// that already happened are kept.
func (p *Purger) Run() (Stats, error) {
	p.stats = Stats{}
	err := p.walk(p.cfg.Root)
	return p.stats, err
}

// walk visits the entries of dir in listing order. The ignore check runs
// before the target check so an ignored name is never removed.
func (p *Purger) walk(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &ListError{Dir: dir, Err: err}
	}

	for _, e := range entries {
		name := e.Name()
		path := filepath.Join(dir, name)

		if !utf8.ValidString(name) {
			p.logger.Warn("skipping entry with undecodable name", "dir", dir, "name", fmt.Sprintf("%q", name))
			continue
		}

		if p.cfg.IsIgnored(name) {
			p.logger.Debug("ignored", "path", path)
			continue
		}

		// Symlinks report !IsDir here, so they are removed as links and
		// never followed.
		isDir := e.IsDir()

		if p.cfg.IsTarget(name) {
			if err := p.remove(path, isDir); err != nil {
				return err
			}
			continue
		}

		if isDir {
			if err := p.walk(path); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *Purger) remove(path string, isDir bool) error {
	if p.onRemove != nil {
		p.onRemove(path, isDir)
	}

	var err error
	if isDir {
		err = p.deleter.RemoveAll(path)
	} else {
		err = p.deleter.Remove(path)
	}
	if err != nil {
		p.logger.Error("failed to delete", "path", path, "error", err)
		return &RemoveError{Path: path, IsDir: isDir, Err: err}
	}

	if isDir {
		p.stats.Dirs++
	} else {
		p.stats.Files++
	}
	return nil
}
