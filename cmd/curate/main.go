package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ignite/channel-curator/internal/config"
	"github.com/ignite/channel-curator/internal/filter"
	"github.com/ignite/channel-curator/internal/religion"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config (optional)")
		input      = flag.String("in", "", "input channel listing CSV")
		outDir     = flag.String("out", "", "output directory (default: alongside input)")
		stageList  = flag.String("stages", "", "comma-separated stage order (default: geo,bitel,pluto,political,religious)")
		threshold  = flag.Float64("threshold", 0, "religious confidence threshold (default 0.5)")
		backup     = flag.Bool("backup", false, "write a timestamped backup of the input before filtering")
		verbose    = flag.Bool("v", false, "debug logging (per-removal detail)")
	)
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load config: %v\n", err)
		os.Exit(1)
	}

	if *input != "" {
		cfg.Pipeline.Input = *input
	}
	if *outDir != "" {
		cfg.Pipeline.OutputDir = *outDir
	}
	if *stageList != "" {
		cfg.Pipeline.Stages = strings.Split(*stageList, ",")
	}
	if *threshold != 0 {
		cfg.Classifier.ConfidenceThreshold = *threshold
	}
	if *backup {
		cfg.Pipeline.Backup = true
	}

	if cfg.Pipeline.Input == "" {
		fmt.Fprintln(os.Stderr, "FATAL: no input listing (use -in or CURATOR_INPUT)")
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().Timestamp().Str("component", "curate").Logger()

	clf := religion.New(religion.DefaultLexicon(), religion.Weights{
		HighPrecision:   cfg.Classifier.HighPrecisionWeight,
		Pattern:         cfg.Classifier.PatternWeight,
		Context:         cfg.Classifier.ContextWeight,
		Domain:          cfg.Classifier.DomainWeight,
		Subdomain:       cfg.Classifier.SubdomainWeight,
		TextThreshold:   cfg.Classifier.TextThreshold,
		DomainThreshold: cfg.Classifier.DomainThreshold,
	})

	stages, err := filter.StagesByName(cfg.Pipeline.Stages, clf, cfg.Classifier.ConfidenceThreshold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	pipeline := &filter.Pipeline{
		Stages:    stages,
		OutputDir: cfg.Pipeline.OutputDir,
		Backup:    cfg.Pipeline.Backup,
		Log:       log,
	}

	start := time.Now()
	summaries, err := pipeline.Run(cfg.Pipeline.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	printReport(cfg.Pipeline.Input, summaries, time.Since(start))
}

func printReport(input string, summaries []*filter.Summary, elapsed time.Duration) {
	fmt.Println("=========================================================")
	fmt.Println(" Channel Listing Curation Report")
	fmt.Println("=========================================================")
	fmt.Printf("Input:  %s\n", input)
	fmt.Println("---------------------------------------------------------")

	totalRemoved := 0
	for i, s := range summaries {
		fmt.Printf("  [%d] %-12s total=%-7d kept=%-7d removed=%-6d (%s)\n",
			i+1, s.Stage, s.Total, s.Kept, s.Removed, s.Elapsed.Round(time.Millisecond))
		totalRemoved += s.Removed
	}

	fmt.Println("---------------------------------------------------------")
	if n := len(summaries); n > 0 {
		first := summaries[0]
		last := summaries[n-1]
		fmt.Printf("Entries in:  %d\n", first.Total)
		fmt.Printf("Entries out: %d\n", last.Kept)
		fmt.Printf("Removed:     %d\n", totalRemoved)
		if first.Total > 0 {
			fmt.Printf("Removal rate: %.2f%%\n", float64(totalRemoved)/float64(first.Total)*100)
		}
	}
	fmt.Printf("Elapsed:     %s\n", elapsed.Round(time.Millisecond))
	fmt.Println("=========================================================")
}
