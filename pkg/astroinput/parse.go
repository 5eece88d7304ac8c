package astroinput

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Asteroidea-tn/astrorect/pkg/astrogeom"
)

const maxLineSize = 1024 * 1024

// ParsePoints reads one "x,y" pair per line. Blank lines are skipped and
// whitespace around each number is ignored. The first bad line aborts
// parsing with a *RecordError.
func ParsePoints(r io.Reader) ([]astrogeom.Point, error) {
	var points []astrogeom.Point

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		pt, err := parseLine(lineNum, line)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	return points, nil
}

// ParseString is ParsePoints over in-memory content.
func ParseString(content string) ([]astrogeom.Point, error) {
	return ParsePoints(strings.NewReader(content))
}

func parseLine(lineNum int, line string) (astrogeom.Point, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return astrogeom.Point{}, &RecordError{Line: lineNum}
	}

	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return astrogeom.Point{}, &RecordError{Line: lineNum, Field: "X", Token: parts[0]}
	}

	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return astrogeom.Point{}, &RecordError{Line: lineNum, Field: "Y", Token: parts[1]}
	}

	return astrogeom.FromXY(x, y), nil
}
