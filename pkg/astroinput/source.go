package astroinput

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Resolve finds name on disk. It tries the working directory first, then
// dir/name and ../dir/name when dir is set.
func Resolve(name, dir string) (string, error) {
	candidates := []string{name}
	if dir != "" && !filepath.IsAbs(name) {
		candidates = append(candidates,
			filepath.Join(dir, name),
			filepath.Join("..", dir, name),
		)
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
		log.Debug().Str("path", c).Msg("input candidate not found")
	}

	return "", fmt.Errorf("%w: could not find %q (checked %v)", ErrSourceUnavailable, name, candidates)
}

// ReadSource loads the whole file. A zero-length file is reported as
// ErrEmptySource, which also matches ErrSourceUnavailable, before any
// parsing happens.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: %w: %s", ErrSourceUnavailable, ErrEmptySource, path)
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("input loaded")
	return string(data), nil
}
