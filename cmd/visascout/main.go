package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"visascout/internal/classify"
	"visascout/internal/config"
	"visascout/internal/fetch"
	"visascout/internal/report"
	"visascout/internal/scrape"
	"visascout/internal/scrape/linkedin"
	"visascout/internal/snapshot"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config path (built-in defaults when empty)")
	outPath := flag.String("out", "", "snapshot path, overrides the config value")
	writeCfg := flag.String("write-config", "", "write the default config to this path and exit")
	flag.Parse()

	if *writeCfg != "" {
		if err := config.SaveAtomic(*writeCfg, config.Default()); err != nil {
			log.Fatalf("write config: %v", err)
		}
		fmt.Printf("Wrote default config to %s\n", *writeCfg)
		return
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config load failed (%s): %v", *cfgPath, err)
		}
	}
	if *outPath != "" {
		cfg.Output = *outPath
	}

	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		log.Printf("[config] warn: %s", w)
	}
	if !v.OK() {
		for _, e := range v.Errors {
			log.Printf("[config] error: %s", e)
		}
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		log.Fatal(err)
	}

	// One run per snapshot path. A cron overlap would interleave paced
	// fetches and race on the output file.
	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Fatalf("another run holds %s", cfg.LockPath())
	}
	defer lock.Unlock()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := fetch.NewClient(
		fetch.WithUserAgent(cfg.HTTP.UserAgent),
		fetch.WithAcceptLanguage(cfg.HTTP.AcceptLanguage),
		fetch.WithTimeout(cfg.Timeout()),
	)
	scraper := linkedin.New(linkedin.Config{
		SearchDelay:  cfg.SearchDelay(),
		ListingDelay: cfg.ListingDelay(),
	}, client)
	runner := scrape.NewRunner(scraper, classify.DefaultTaxonomy(), classify.DefaultDetector(), classify.DefaultReasons())

	start := time.Now()
	records, stats, err := runner.Run(ctx, cfg.Locations, cfg.Searches)
	if err != nil {
		// Interrupted runs keep whatever snapshot the previous run wrote.
		log.Fatalf("run aborted: %v", err)
	}

	if err := snapshot.Write(cfg.Output, records); err != nil {
		log.Fatalf("snapshot write: %v", err)
	}
	sum := report.Summary{
		RunAt:          start.UTC(),
		ElapsedSeconds: time.Since(start).Seconds(),
		Source:         scraper.Name(),
		Stats:          stats,
		Records:        len(records),
		Output:         cfg.Output,
	}
	if err := report.Write(report.PathFor(cfg.Output), sum); err != nil {
		log.Printf("[report] warn: %v", err)
	}

	fmt.Printf("Wrote %d jobs to %s\n", len(records), cfg.Output)
}
