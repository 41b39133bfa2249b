package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/wildclans/internal/gui"
	"github.com/appengine-ltd/wildclans/internal/housekeeping"
	"github.com/appengine-ltd/wildclans/internal/update"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion  bool
		localeTag    string
		placeholders bool
		checkUpdate  bool
		applyUpdate  bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&localeTag, "locale", "en-us", "button text language")
	flag.BoolVar(&placeholders, "placeholder-symbols", false, "render blank symbol tiles instead of loading symbol art")
	flag.BoolVar(&checkUpdate, "check-update", false, "check for a newer release and exit")
	flag.BoolVar(&applyUpdate, "update", false, "download and install the latest release")
	flag.Parse()

	if showVersion {
		fmt.Printf("Wildclans %s (%s) %s\n", version, commit, date)
		return
	}
	if checkUpdate {
		status, err := update.Check(version)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if status.Available {
			fmt.Printf("Update available: v%s -> v%s. Run with -update to install.\n", status.Current, status.Latest)
		} else {
			fmt.Printf("Up to date (v%s).\n", status.Latest)
		}
		return
	}

	if err := housekeeping.SetupDataDir(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := housekeeping.InitLogging(version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	defer housekeeping.LogPanic()

	if applyUpdate {
		// Only returns when up to date or on failure; success restarts the
		// process.
		if err := update.Apply(version); err != nil {
			zap.L().Error("update failed", zap.Error(err))
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	housekeeping.CleanupUpdateResidue()
	if err := housekeeping.MigrateLegacySaves(); err != nil {
		zap.L().Error("save migration failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := housekeeping.PruneOldLogs(); err != nil {
		zap.L().Warn("log pruning failed", zap.Error(err))
	}

	app := gui.NewApp(gui.AppConfig{
		Version:           version,
		Commit:            commit,
		BuildDate:         date,
		Locale:            localeTag,
		PlaceholderGlyphs: placeholders,
	})

	if err := app.Run(); err != nil {
		zap.L().Error("fatal", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
