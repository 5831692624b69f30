package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"

	"github.com/sarchlab/csim/datarecording"
	"github.com/sarchlab/csim/mem/cache"
	"github.com/sarchlab/csim/mem/trace"
	"github.com/sarchlab/csim/report"
	"github.com/sarchlab/csim/sim/replay"
)

// run replays the configured trace and prints the summary. Nothing is printed
// to stdout if the trace cannot be read to the end.
func run(cfg config, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "csim: ", 0)

	c, err := cache.MakeBuilder().WithGeometry(cfg.geometry()).Build()
	if err != nil {
		return &ConfigurationError{Msg: err.Error()}
	}

	f, err := trace.Open(cfg.tracePath)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		recorder datarecording.DataRecorder
		runID    = datarecording.NewRunID()
	)

	if cfg.record != "" {
		recorder, err = datarecording.New(cfg.record)
		if err != nil {
			return fmt.Errorf("cannot record run: %w", err)
		}
		defer recorder.Close()

		c.AcceptHook(datarecording.NewAccessRecorder(recorder, runID))
		logger.Printf("recording run %s in %s",
			runID, datarecording.Filename(cfg.record))
	}

	var setCounter *report.SetCounter
	if cfg.perSet {
		setCounter = report.NewSetCounter(c.Geometry().NumSets())
		c.AcceptHook(setCounter)
	}

	var printer *report.VerbosePrinter

	replayer := replay.NewReplayer(c)
	if cfg.verbose {
		f.WithLogger(logger)

		useColor := !cfg.noColor && !color.NoColor
		printer = report.NewVerbosePrinter(stdout, useColor)
		replayer.AcceptHook(printer)
	}

	stats := replayer.Replay(f)
	if err := f.Err(); err != nil {
		return err
	}

	if printer != nil {
		if err := printer.Err(); err != nil {
			return fmt.Errorf("cannot print trace: %w", err)
		}
	}

	if recorder != nil {
		datarecording.RecordRun(recorder, datarecording.MakeRunEntry(
			runID, cfg.tracePath, c.Geometry(), stats, f.NumSkipped()))

		if err := recorder.Close(); err != nil {
			return fmt.Errorf("cannot record run: %w", err)
		}
	}

	if setCounter != nil {
		if err := setCounter.Print(stdout); err != nil {
			return err
		}
	}

	if err := report.PrintSummary(stdout, stats); err != nil {
		return err
	}

	if cfg.resultsFile != "" {
		return report.WriteResultsFile(cfg.resultsFile, stats)
	}

	return nil
}
