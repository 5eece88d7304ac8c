package main

import (
	"fmt"
	"strings"

	"github.com/Asteroidea-tn/astrorect/pkg/astroenv"
	"github.com/Asteroidea-tn/astrorect/pkg/astrolog"
	"github.com/Asteroidea-tn/astrorect/pkg/astromail"
	"github.com/Asteroidea-tn/astrorect/pkg/astroreport"
)

/*
.env example:

INPUT_FILE=input.txt
INPUT_DIR=day_9
SEARCH_WORKERS=4
REPORT_FORMAT=yaml
LOG_TO_FILE=true
SMTP_HOST=smtp.example.com
REPORT_MAIL_TO=ops@example.com
*/

type Config struct {
	InputFile    string  `env:"INPUT_FILE,input.txt"`
	InputDir     string  `env:"INPUT_DIR,"`
	Tolerance    float64 `env:"BOUNDARY_TOLERANCE,0.0001"`
	Workers      int     `env:"SEARCH_WORKERS,1"`
	ReportFormat string  `env:"REPORT_FORMAT,text"`
	ReportFile   string  `env:"REPORT_FILE,"`

	Log  astrolog.Config
	Mail astromail.Config
}

func loadConfig(files ...string) (Config, error) {
	var cfg Config
	if err := astroenv.Load(&cfg, files...); err != nil {
		return cfg, err
	}

	switch strings.ToLower(cfg.ReportFormat) {
	case astroreport.FormatText, astroreport.FormatJSON, astroreport.FormatYAML:
	default:
		return cfg, fmt.Errorf("REPORT_FORMAT: %w: %q", astroreport.ErrUnknownFormat, cfg.ReportFormat)
	}
	if cfg.Tolerance <= 0 {
		return cfg, fmt.Errorf("BOUNDARY_TOLERANCE must be positive, got %v", cfg.Tolerance)
	}

	return cfg, nil
}
