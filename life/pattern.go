package life

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePlaintext reads a pattern in the plaintext ".cells" format: lines
// starting with '!' are comments, 'O' or '*' is a living cell and '.' a
// dead one. The first pattern row is y=0 and the first column x=0.
func ParsePlaintext(r io.Reader) (CellSet, error) {
	cells := CellSet{}
	scanner := bufio.NewScanner(r)

	var y int32
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(text, "!") {
			continue
		}
		for x, ch := range text {
			switch ch {
			case 'O', '*':
				cells.Add(Cell{X: int32(x), Y: y})
			case '.':
			default:
				return nil, errors.Errorf("line %d: unexpected %q in plaintext pattern", line, ch)
			}
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read plaintext pattern")
	}
	return cells, nil
}

// FormatPlaintext renders the set's bounding box in plaintext format,
// one row per line. An empty set renders as an empty string.
func FormatPlaintext(s CellSet) string {
	lo, hi, ok := s.Bounds()
	if !ok {
		return ""
	}

	var b strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if s.Contains(Cell{x, y}) {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseCoordinates reads one "x y" (or "x,y") pair per line. Blank lines
// and lines starting with '#' are skipped.
func ParseCoordinates(r io.Reader) (CellSet, error) {
	cells := CellSet{}
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want two coordinates, got %q", line, text)
		}

		x, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: x", line)
		}
		y, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: y", line)
		}
		cells.Add(Cell{X: int32(x), Y: int32(y)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read coordinates")
	}
	return cells, nil
}
