package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/philipseo/purge-deps/internal/config"
	"github.com/philipseo/purge-deps/internal/disk"
	"github.com/philipseo/purge-deps/internal/logger"
	"github.com/philipseo/purge-deps/internal/purge"
	"github.com/philipseo/purge-deps/internal/ui"
)

const programName = "purge-deps"

// runPurge resolves the configuration from args and performs the walk.
// Errors are printed here; the caller only picks the exit code.
func runPurge(out, errOut io.Writer, args []string, preset config.Preset) error {
	printer := ui.NewPrinter(out, errOut)

	inv, err := config.Parse(args, preset)
	if err != nil {
		printer.Error(err)
		return err
	}

	switch inv.Action {
	case config.ActionHelp:
		printer.Plain(config.Usage(programName, preset))
		return nil
	case config.ActionVersion:
		printer.Plain(fmt.Sprintf("%s %s (%s) built %s\n", programName, appVersion, appCommit, appDate))
		return nil
	}

	log := logger.NewLogger(logger.Config{Level: logger.LevelFor(inv.Debug)}, errOut)
	inv.MergeIgnoreFile(config.IgnoreFileName, log)
	cfg := inv.Config

	printer.Field("Path", cfg.Root)
	printer.Field("Targets", ui.FormatList(cfg.Targets))
	printer.Field("Ignore", ui.FormatList(cfg.Ignore))
	if preset == config.PresetFull {
		printer.Field("Use .gitignore", fmt.Sprint(cfg.UseIgnoreFile))
	}

	freeBefore, probeErr := disk.FreeBytes(cfg.Root)
	if probeErr != nil {
		log.Debug("free space probe unavailable", "path", cfg.Root, "error", probeErr)
	}

	p := purge.New(cfg, purge.Options{
		Logger:   log,
		OnRemove: printer.Removing,
	})
	stats, err := p.Run()
	if err != nil {
		printer.Error(err)
		log.Debug("purge aborted", "removed_files", stats.Files, "removed_dirs", stats.Dirs)
		return err
	}

	printer.Success(summary(stats, freeBefore, probeErr, cfg.Root, log))
	return nil
}

// summary describes what the walk removed, including reclaimed space when
// the filesystem can be queried before and after.
func summary(stats purge.Stats, freeBefore uint64, probeErr error, root string, log *slog.Logger) string {
	msg := fmt.Sprintf("Removed %d folders and %d files", stats.Dirs, stats.Files)
	if probeErr != nil || stats.Total() == 0 {
		return msg
	}
	freeAfter, err := disk.FreeBytes(root)
	if err != nil {
		log.Debug("free space probe unavailable", "path", root, "error", err)
		return msg
	}
	return msg + ", reclaimed " + ui.FormatSize(disk.Reclaimed(freeBefore, freeAfter))
}
