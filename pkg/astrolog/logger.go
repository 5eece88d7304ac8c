package astrolog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeLayout = "2006-01-02 15:04:05.000"

var (
	mu      sync.Mutex
	logFile *lumberjack.Logger
)

type Config struct {
	Level     string `env:"LOG_LEVEL,info"`
	ToFile    bool   `env:"LOG_TO_FILE,false"`
	Dir       string `env:"LOG_DIR,./logs"`
	FileName  string `env:"LOG_FILE_NAME,astrorect"`
	Formatted bool   `env:"LOG_FORMATTED,true"`
	MaxSizeMB int    `env:"LOG_MAX_SIZE_MB,10"`
	MaxFiles  int    `env:"LOG_MAX_FILES,7"`

	// Banner lines written to the file at startup, e.g. run id and input.
	Banner []string
	// Console overrides stderr, mostly for tests.
	Console io.Writer
}

// =============================
// Writers
// =============================

// consoleWriter adapts zerolog.ConsoleWriter to zerolog.LevelWriter.
type consoleWriter struct {
	zerolog.ConsoleWriter
}

// WriteLevel reports len(p): the console text differs in length from the
// JSON entry and zerolog treats a mismatch as a short write.
func (c consoleWriter) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	_, err := c.ConsoleWriter.Write(p)
	return len(p), err
}

// fileWriter writes either the raw JSON entry or a pipe-separated line.
type fileWriter struct {
	*lumberjack.Logger
	formatted bool
}

func (f fileWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if !f.formatted {
		return f.Logger.Write(p)
	}
	line, err := formatLine(level, p)
	if err != nil {
		return f.Logger.Write(p)
	}
	_, err = f.Logger.Write([]byte(line))
	return len(p), err
}

// =============================
// Formatting
// =============================

// formatLine turns a zerolog JSON entry into
// "time | level | caller | message | k=v ...".
func formatLine(level zerolog.Level, p []byte) (string, error) {
	var entry map[string]interface{}
	if err := json.Unmarshal(p, &entry); err != nil {
		return "", err
	}

	ts, _ := entry[zerolog.TimestampFieldName].(string)
	msg, _ := entry[zerolog.MessageFieldName].(string)
	caller, _ := entry[zerolog.CallerFieldName].(string)

	return fmt.Sprintf("%s | %-5s | %-20s | %s | %s\n",
		ts,
		level.String(),
		caller,
		msg,
		strings.Join(extraFields(entry), " "),
	), nil
}

// callerBase reduces "pkg/sub/file.go" to "file".
func callerBase(file string) string {
	if file == "" {
		return file
	}
	return strings.TrimSuffix(filepath.Base(file), ".go")
}

// extraFields returns sorted key=value pairs for non-standard fields.
func extraFields(entry map[string]interface{}) []string {
	var extras []string
	for k, v := range entry {
		switch k {
		case zerolog.TimestampFieldName, zerolog.MessageFieldName,
			zerolog.LevelFieldName, zerolog.CallerFieldName:
			continue
		}
		extras = append(extras, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(extras)
	return extras
}

// banner frames the startup lines in a box so restarts stand out in the file.
func banner(now time.Time, lines []string) string {
	body := append([]string{
		"  ▶  ASTRORECT STARTED",
		"  Started : " + now.Format("2006-01-02 15:04:05"),
	}, lines...)

	width := 50
	for _, l := range body {
		if n := len([]rune(l)) + 4; n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("\n┌" + strings.Repeat("─", width) + "┐\n")
	for i, l := range body {
		b.WriteString("│" + l + strings.Repeat(" ", width-len([]rune(l))) + "│\n")
		if i == 0 {
			b.WriteString("├" + strings.Repeat("─", width) + "┤\n")
		}
	}
	b.WriteString("└" + strings.Repeat("─", width) + "┘\n\n")
	return b.String()
}

// =============================
// File housekeeping
// =============================

// pruneLogFiles deletes the oldest *.log files in dir beyond keep.
func pruneLogFiles(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type logEntry struct {
		name string
		mod  time.Time
	}
	var files []logEntry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, logEntry{e.Name(), info.ModTime()})
	}
	if len(files) <= keep {
		return nil
	}

	sort.Slice(files, func(i, j int) bool { return files[i].mod.Before(files[j].mod) })

	for _, f := range files[:len(files)-keep] {
		if err := os.Remove(filepath.Join(dir, f.name)); err != nil {
			log.Warn().Err(err).Str("file", f.name).Msg("could not delete old log file")
		}
	}
	return nil
}

// newFileWriter opens the day's log file under cfg.Dir. Runs on the same day
// append to the same file.
func newFileWriter(cfg Config) (*fileWriter, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	if err := pruneLogFiles(cfg.Dir, cfg.MaxFiles); err != nil {
		log.Warn().Err(err).Msg("could not prune log directory")
	}

	suffix := "_json"
	if cfg.Formatted {
		suffix = ""
	}
	name := fmt.Sprintf("%s_%s%s.log", cfg.FileName, time.Now().Format("02-01-2006"), suffix)

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: 3,
		MaxAge:     30,
	}
	if _, err := lj.Write([]byte(banner(time.Now(), cfg.Banner))); err != nil {
		return nil, err
	}

	return &fileWriter{Logger: lj, formatted: cfg.Formatted}, nil
}

// =============================
// Setup
// =============================

// Init installs the global zerolog logger: console output always, plus a
// rotating file when cfg.ToFile is set. A file that cannot be opened is
// reported on the console and skipped.
func Init(cfg Config) {
	zerolog.TimeFieldFormat = timeLayout
	zerolog.TimestampFunc = func() time.Time { return time.Now().Local() }
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return fmt.Sprintf("%s:%d", callerBase(file), line)
	}

	out := cfg.Console
	if out == nil {
		out = os.Stderr
	}
	writers := []io.Writer{consoleWriter{zerolog.ConsoleWriter{Out: out, TimeFormat: timeLayout}}}

	var fileErr error
	var fw *fileWriter
	if cfg.ToFile {
		fw, fileErr = newFileWriter(cfg)
		if fw != nil {
			writers = append(writers, fw)
		}
	}

	mu.Lock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if fw != nil {
		logFile = fw.Logger
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Caller().
		Logger()
	mu.Unlock()

	SetLevel(cfg.Level)

	if fileErr != nil {
		log.Error().Err(fileErr).Str("dir", cfg.Dir).Msg("file logging disabled")
	}
}

// Close releases the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log.Logger
}

// SetLevel sets the global level by name, falling back to info.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
