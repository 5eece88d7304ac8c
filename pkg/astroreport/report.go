package astroreport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Report is the outcome of one run over an input source.
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Source    string        `json:"source" yaml:"source"`
	Points    int           `json:"points" yaml:"points"`
	Part1     uint64        `json:"part1" yaml:"part1"`
	Part2     uint64        `json:"part2" yaml:"part2"`
	Elapsed   time.Duration `json:"-" yaml:"-"`
	ElapsedUS int64         `json:"elapsed_us" yaml:"elapsed_us"`
}

// Finish stamps the elapsed time since start.
func (r *Report) Finish(start time.Time) {
	r.Elapsed = time.Since(start)
	r.ElapsedUS = r.Elapsed.Microseconds()
}

// Write renders the report in the given format. An empty format means text.
func (r Report) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		_, err := fmt.Fprintf(w, "part 1 answer: %d\npart 2 answer: %d\nTotal Time: %d µs\n",
			r.Part1, r.Part2, r.ElapsedUS)
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// String renders the text form.
func (r Report) String() string {
	var b strings.Builder
	_ = r.Write(&b, FormatText)
	return b.String()
}

// SaveFile writes the report to path, replacing any previous file.
func (r Report) SaveFile(path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Write(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
