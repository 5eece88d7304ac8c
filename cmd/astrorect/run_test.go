package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_square(t *testing.T) {
	code, out, _ := runCLI(t, writeInput(t, "0,0\n0,3\n3,3\n3,0\n"))

	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "part 1 answer: 16\npart 2 answer: 16\nTotal Time: "), out)
	assert.True(t, strings.HasSuffix(out, " µs\n"), out)
}

func TestRun_workersAndJSON(t *testing.T) {
	t.Setenv("REPORT_FORMAT", "json")
	t.Setenv("SEARCH_WORKERS", "4")
	input := writeInput(t, "7,1\n11,1\n11,7\n9,7\n9,5\n2,5\n2,3\n7,3\n")

	code, out, _ := runCLI(t, input)
	require.Equal(t, 0, code)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, float64(50), got["part1"])
	assert.Equal(t, float64(24), got["part2"])
	assert.Equal(t, float64(8), got["points"])
	assert.Equal(t, input, got["source"])
	assert.NotEmpty(t, got["run_id"])
}

func TestRun_reportFile(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.yaml")
	t.Setenv("REPORT_FORMAT", "yaml")
	t.Setenv("REPORT_FILE", reportPath)

	code, out, _ := runCLI(t, writeInput(t, "0,0\n0,4\n2,4\n2,2\n4,2\n4,0\n"))
	require.Equal(t, 0, code)
	assert.Contains(t, out, "part1: 25\n")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "part2: 15\n")
}

func TestRun_inputDirLookup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "points.txt"), []byte("0,0\n0,3\n3,3\n3,0\n"), 0o644))
	t.Setenv("INPUT_DIR", dir)

	code, out, _ := runCLI(t, "points.txt")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "part 2 answer: 16\n")
}

func TestRun_failures(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.txt")}, "Error reading file"},
		{"empty file", []string{writeInput(t, "")}, "input source is empty"},
		{"bad x", []string{writeInput(t, "abc,5\n")}, "Error parsing data: line 1: invalid X value 'abc'"},
		{"bad shape", []string{writeInput(t, "1,2\n3\n")}, "line 2: invalid format"},
		{"blank only", []string{writeInput(t, "\n\n")}, "no valid points found"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tc.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.env")

	cfg, err := loadConfig(missing)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", cfg.InputFile)
	assert.Equal(t, 0.0001, cfg.Tolerance)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "text", cfg.ReportFormat)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Mail.Enabled())

	t.Setenv("REPORT_FORMAT", "xml")
	_, err = loadConfig(missing)
	assert.ErrorContains(t, err, "REPORT_FORMAT")

	t.Setenv("REPORT_FORMAT", "text")
	t.Setenv("BOUNDARY_TOLERANCE", "-1")
	_, err = loadConfig(missing)
	assert.ErrorContains(t, err, "BOUNDARY_TOLERANCE")
}

func TestRun_badConfig(t *testing.T) {
	t.Setenv("SEARCH_WORKERS", "lots")
	code, _, errOut := runCLI(t, writeInput(t, "0,0\n1,1\n"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error loading config")
}
