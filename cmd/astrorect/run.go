package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Asteroidea-tn/astrorect/pkg/astrogeom"
	"github.com/Asteroidea-tn/astrorect/pkg/astroinput"
	"github.com/Asteroidea-tn/astrorect/pkg/astrolog"
	"github.com/Asteroidea-tn/astrorect/pkg/astromail"
	"github.com/Asteroidea-tn/astrorect/pkg/astroreport"
)

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	name := cfg.InputFile
	if len(args) > 0 {
		name = args[0]
	}
	runID := uuid.NewString()

	cfg.Log.Console = stderr
	cfg.Log.Banner = []string{
		"  Run ID  : " + runID,
		"  Input   : " + name,
	}
	astrolog.Init(cfg.Log)
	defer astrolog.Close()

	path, err := astroinput.Resolve(name, cfg.InputDir)
	if err != nil {
		return readFailed(runID, name, err, stderr)
	}
	content, err := astroinput.ReadSource(path)
	if err != nil {
		return readFailed(runID, name, err, stderr)
	}

	return solve(cfg, runID, path, content, start, stdout, stderr)
}

func readFailed(runID, name string, err error, stderr io.Writer) int {
	logger := astrolog.Logger().With().Str("run_id", runID).Logger()
	logger.Error().Err(err).Str("input", name).Msg("read failed")
	fmt.Fprintf(stderr, "Error reading file '%s': %v\n", name, err)
	return 1
}

func solve(cfg Config, runID, path, content string, start time.Time, stdout, stderr io.Writer) int {
	logger := astrolog.Logger().With().Str("run_id", runID).Logger()

	points, err := astroinput.ParseString(content)
	if err != nil {
		logger.Error().Err(err).Str("input", path).Msg("parse failed")
		fmt.Fprintf(stderr, "Error parsing data: %v\n", err)
		return 1
	}
	logger.Debug().Int("points", len(points)).Msg("input parsed")

	report := astroreport.Report{
		RunID:  runID,
		Source: path,
		Points: len(points),
		Part1:  astrogeom.MaxArea(points),
		Part2: astrogeom.MaxContainedArea(points,
			astrogeom.WithTolerance(cfg.Tolerance),
			astrogeom.WithWorkers(cfg.Workers),
		),
	}
	report.Finish(start)

	logger.Info().
		Uint64("part1", report.Part1).
		Uint64("part2", report.Part2).
		Int64("elapsed_us", report.ElapsedUS).
		Msg("search finished")

	if err := report.Write(stdout, cfg.ReportFormat); err != nil {
		logger.Error().Err(err).Msg("could not write report")
		return 1
	}

	if cfg.ReportFile != "" {
		if err := report.SaveFile(cfg.ReportFile, cfg.ReportFormat); err != nil {
			logger.Error().Err(err).Str("file", cfg.ReportFile).Msg("could not save report")
		}
	}

	if cfg.Mail.Enabled() {
		if err := astromail.NewNotifier(cfg.Mail).Notify(report); err != nil {
			logger.Warn().Err(err).Msg("report not mailed")
		}
	}

	return 0
}
