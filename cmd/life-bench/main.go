package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := parseFlags()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Starting life benchmark: %d workers, %s...\n", cfg.Workers, describeLimit(cfg))

	report := &Report{Config: cfg}
	runtime.ReadMemStats(&report.MemStatsStart)

	start := time.Now()
	results, err := run(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}
	report.TotalTime = time.Since(start)
	report.Workers = results
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	fmt.Println()
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
}

func parseFlags() (Config, error) {
	var (
		flags      Config
		configPath string
	)

	flaggy.SetName("life-bench")
	flaggy.SetDescription("Steps Game of Life worlds as fast as possible and reports throughput.")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Duration(&flags.Duration, "d", "duration", "How long each worker runs, for example 10s")
	flaggy.Int(&flags.Workers, "w", "workers", "Number of independent worlds stepped in parallel")
	flaggy.String(&flags.Pattern, "p", "pattern", "Plaintext .cells file to start from")
	flaggy.Int32(&flags.Soup, "s", "soup", "Edge length of the Perlin soup used when no pattern is given")
	flaggy.Int64(&flags.Seed, "", "seed", "Soup seed; worker i uses seed+i")
	flaggy.UInt64(&flags.Generations, "g", "generations", "Stop each worker after this many generations")
	flaggy.Bool(&flags.Visuals, "v", "visuals", "Also sync one entity per living cell every generation")
	flaggy.Bool(&flags.NoColor, "", "no-color", "Disable colored output")
	flaggy.String(&configPath, "c", "config", "JSON config file; flags override its values")
	flaggy.Parse()

	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	cfg = cfg.merge(flags)
	return cfg, cfg.validate()
}

func describeLimit(cfg Config) string {
	if cfg.Generations > 0 {
		return fmt.Sprintf("%d generations", cfg.Generations)
	}
	return cfg.Duration.String()
}

// run steps one world per worker until the duration expires or every
// worker reached cfg.Generations.
func run(ctx context.Context, cfg Config) ([]WorkerResult, error) {
	if cfg.Generations == 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	results := make([]WorkerResult, cfg.Workers)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range cfg.Workers {
		eg.Go(func() error {
			start, err := startPattern(cfg, i)
			if err != nil {
				return errors.Wrapf(err, "worker %d", i)
			}
			results[i] = runWorker(ctx, i, start, cfg)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
