package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kgeorge/pdflines/internal/config"
	"github.com/kgeorge/pdflines/internal/pdf"
	"github.com/kgeorge/pdflines/internal/tokenizer"
	"github.com/kgeorge/pdflines/pkg/logger"
	"github.com/kgeorge/pdflines/pkg/textutil"
	"github.com/kgeorge/pdflines/pkg/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	var separators string
	flag.StringVar(&separators, "s", "", "characters to split lines on (overrides config)")
	flag.StringVar(&separators, "separators", "", "characters to split lines on (overrides config)")
	engine := flag.String("engine", "", "extraction engine: fitz, pdfcpu or pure (overrides config)")
	noLines := flag.Bool("no-lines", false, "suppress printing of extracted lines")
	noTokens := flag.Bool("no-tokens", false, "suppress printing of derived tokens")
	normalize := flag.Bool("normalize", false, "normalize unicode spaces and hyphens in extracted lines")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersionInfo())
		os.Exit(0)
	}

	log := logger.New(logger.WithPrefix("[pdflines] "))
	log.SetVerbose(*verbose)

	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("Error loading config: %v", err)
		}
	}

	// An explicit -s "" must surface as a configuration error rather
	// than silently falling back to the default separator set.
	separatorsSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "s" || f.Name == "separators" {
			separatorsSet = true
		}
	})
	if separatorsSet {
		cfg.Separators = separators
	}
	if *engine != "" {
		cfg.Engine = *engine
	}
	if *normalize {
		cfg.Normalize = true
	}
	if flag.NArg() > 0 {
		cfg.InputFile = flag.Arg(0)
	}

	// Configuration errors are reported before touching the document.
	tok, err := tokenizer.New(cfg.Separators)
	if err != nil {
		log.Fatal("Invalid separator configuration: %v", err)
	}

	extractor, err := pdf.NewExtractor(cfg.Engine, log)
	if err != nil {
		log.Fatal("Invalid engine configuration: %v", err)
	}

	log.Debug("Extracting %s with engine %s", cfg.InputFile, cfg.Engine)

	pages, err := extractor.ExtractPages(context.Background(), cfg.InputFile)
	if err != nil {
		log.Info("Error extracting %s: %v", cfg.InputFile, err)
		if errors.Is(err, pdf.ErrFileNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	for _, page := range pages {
		log.Debug("Page %d: %d lines", page.Number, len(page.Lines))
		for _, line := range page.Lines {
			if cfg.Normalize {
				line = textutil.Normalize(line)
			}
			if !*noLines {
				fmt.Println(line)
			}
			if !*noTokens {
				for _, token := range tok.Tokenize(line) {
					fmt.Println(token)
				}
			}
		}
	}
}
