package main

import (
	"fmt"
	"os"

	"github.com/mumpitzstuff/goodTimes/internal/archive"
	"github.com/mumpitzstuff/goodTimes/internal/cli"
	"github.com/mumpitzstuff/goodTimes/internal/eventlog"
	"github.com/mumpitzstuff/goodTimes/internal/notify"
	"github.com/mumpitzstuff/goodTimes/internal/service"
)

func main() {
	app := &cli.App{Wire: wire}
	code := cli.Execute(app)
	if app.Cleanup != nil {
		app.Cleanup()
	}
	os.Exit(code)
}

// wire builds the production services from the loaded configuration. The
// report and check pipelines read the live sources merged with the local
// archive; the archive service reads the live sources only, so a snapshot
// never re-ingests its own rows.
func wire(a *cli.App) error {
	cfg, log := a.Cfg, a.Log

	archivePath, err := cfg.ArchivePath()
	if err != nil {
		return err
	}
	db, err := archive.OpenDB(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	a.Cleanup = func() { db.Close() }
	store := archive.NewStore(db)

	var live []eventlog.Source
	if cfg.Sources.Journal {
		live = append(live, eventlog.NewJournalSource(log))
	}
	for _, path := range cfg.Sources.Dumps {
		live = append(live, eventlog.NewDumpSource(path, log))
	}

	liveFetcher := eventlog.NewFetcher(log, live...)
	merged := append([]eventlog.Source{}, live...)
	merged = append(merged, eventlog.NewArchiveSource(store))
	fetcher := eventlog.NewFetcher(log, merged...)

	var notifier notify.Notifier
	switch cfg.Check.Notifier {
	case "desktop":
		notifier = notify.NewDesktopNotifier(log)
	case "console":
		notifier = notify.NewConsoleNotifier(os.Stderr)
	default:
		notifier = notify.NewLogNotifier(log)
	}

	observer := service.NewLogUseCaseObserver(log)

	a.Report = service.NewReportService(cfg, fetcher)
	a.Check = service.NewCheckService(cfg, fetcher, notifier, log, observer)
	a.QuietCheck = service.NewCheckService(cfg, fetcher, nil, log)
	a.Archive = service.NewArchiveService(cfg, liveFetcher, store, archivePath, observer)
	return nil
}
