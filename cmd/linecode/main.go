package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"Linecode/cmd/linecode/config"
	"Linecode/pkg/pipeline"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("linecode failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("linecode", flag.ContinueOnError)
	var (
		configFile  = fs.String("config", "", "YAML configuration file")
		data        = fs.String("data", "", "bit string to encode")
		hexData     = fs.String("hex", "", "bytes to encode, as hex")
		inFile      = fs.String("in", "", "file whose raw bytes are encoded")
		scheme      = fs.String("scheme", "", "NRZ-L, NRZ-I, Manchester, Differential Manchester or AMI")
		scrambling  = fs.String("scramble", "", "None, B8ZS or HDB3 (AMI only)")
		analog      = fs.Bool("analog", false, "treat the input as an analog signal (PCM/DM)")
		levels      = fs.Bool("levels", true, "print the level sequence")
		stats       = fs.Bool("stats", false, "print line statistics")
		colored     = fs.Bool("color", false, "colour the output")
		outFile     = fs.String("out", "", "export the waveform to this file")
		format      = fs.String("format", "", "waveform format: txt or bin")
		samples     = fs.Int("samples", 0, "samples per level in the binary waveform")
		batchFile   = fs.String("batch", "", "encode every line of this file")
		limit       = fs.Int("limit", 0, "concurrent batch requests")
		interactive = fs.Bool("i", false, "prompt for input on the console")
		verbose     = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Input.Data, cfg.Input.Hex, cfg.Input.File = *data, "", ""
		case "hex":
			cfg.Input.Data, cfg.Input.Hex, cfg.Input.File = "", *hexData, ""
		case "in":
			cfg.Input.Data, cfg.Input.Hex, cfg.Input.File = "", "", *inFile
		case "scheme":
			cfg.Input.Scheme = *scheme
		case "scramble":
			cfg.Input.Scramble = *scrambling
		case "analog":
			cfg.Input.Analog = *analog
		case "levels":
			cfg.Output.ShowLevels = *levels
		case "stats":
			cfg.Output.ShowStats = *stats
		case "color":
			cfg.Output.Color = *colored
		case "out":
			cfg.Waveform.File = *outFile
		case "format":
			cfg.Waveform.Format = *format
		case "samples":
			cfg.Waveform.SamplesPerLevel = *samples
		case "batch":
			cfg.Batch.File = *batchFile
		case "limit":
			cfg.Batch.Limit = *limit
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}
	slog.Debug("configuration", "config", fmt.Sprintf("%+v", *cfg))

	switch {
	case *interactive:
		return runInteractive(os.Stdin, os.Stdout, cfg)
	case cfg.Batch.File != "":
		return runBatch(cfg)
	default:
		return runSingle(cfg)
	}
}

func runSingle(cfg *config.Config) error {
	req, err := config.CreateRequest(cfg)
	if err != nil {
		return err
	}
	res, err := pipeline.Run(req)
	if err != nil {
		return err
	}

	if err := config.CreatePrinter(cfg).Print(os.Stdout, res); err != nil {
		return err
	}
	return export(cfg, res)
}

func runBatch(cfg *config.Config) error {
	reqs, err := config.CreateBatch(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := pipeline.RunBatch(ctx, reqs, cfg.Batch.Limit)
	if err != nil {
		return err
	}

	printer := config.CreatePrinter(cfg)
	for i, res := range results {
		if i > 0 {
			fmt.Println()
		}
		if err := printer.Print(os.Stdout, res); err != nil {
			return err
		}
		if cfg.Waveform.File != "" {
			if err := exportTo(cfg, batchFilename(cfg.Waveform.File, i), res); err != nil {
				return err
			}
		}
	}
	return nil
}

// batchFilename numbers the i-th export of a batch: levels.txt becomes
// levels-0.txt, levels-1.txt, ...
func batchFilename(file string, i int) string {
	ext := filepath.Ext(file)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(file, ext), i, ext)
}

func export(cfg *config.Config, res *pipeline.Result) error {
	if cfg.Waveform.File == "" {
		return nil
	}
	return exportTo(cfg, cfg.Waveform.File, res)
}

func exportTo(cfg *config.Config, filename string, res *pipeline.Result) error {
	wf, format, err := config.CreateWaveform(cfg)
	if err != nil {
		return err
	}
	if err := wf.Export(filename, format, res.Levels); err != nil {
		return fmt.Errorf("exporting waveform: %w", err)
	}
	slog.Info("waveform exported", "file", filename, "format", format.String(), "levels", len(res.Levels))
	return nil
}
