package profile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePoints reads a plain-text coordinate listing into a Profile. Each
// point is a line of two numbers separated by whitespace and/or commas.
// Blank lines, comment lines starting with '#', placeholder lines
// containing "...", and lines with fewer than two fields are skipped.
// This is the format published airfoil coordinate tables ship in.
func ParsePoints(r io.Reader) (Profile, error) {
	var out Profile
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.Contains(line, "...") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("points: line %d: %q: %w", lineno, fields[0], err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("points: line %d: %q: %w", lineno, fields[1], err)
		}
		out = append(out, Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	return out, nil
}

// WriteScript writes a profile as a (defprofile ...) wing-script form so
// converted coordinate files can be loaded by the evaluation engine.
func WriteScript(w io.Writer, name string, p Profile) error {
	if _, err := fmt.Fprintf(w, "(defprofile %q (points\n", name); err != nil {
		return err
	}
	for _, pt := range p {
		if _, err := fmt.Fprintf(w, "  %.6f %.6f\n", pt.X, pt.Y); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "))")
	return err
}
