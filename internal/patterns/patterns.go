// Package patterns reads cell templates in the plain-text format: one grid
// row per line, '.' for a dead cell and any other character for a live one.
// Dimensions are implied by the line count and the longest line.
package patterns

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed templates/*.txt
var library embed.FS

// ErrEmpty is reported for templates without a single cell.
var ErrEmpty = errors.New("template has no cells")

// ErrUnknown is reported when a named template is not in the library.
var ErrUnknown = errors.New("unknown template")

// ParseError describes a template that could not be read or parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Pattern is a parsed template. Rows may be ragged; Width is the longest row.
type Pattern struct {
	Name   string
	Rows   [][]bool
	Width  int
	Height int
}

// Alive reports whether the template marks (x, y) as live. Coordinates past
// the end of a short row are not part of the template.
func (p Pattern) Alive(x, y int) bool {
	if y < 0 || y >= len(p.Rows) || x < 0 || x >= len(p.Rows[y]) {
		return false
	}
	return p.Rows[y][x]
}

// Population counts the live cells of the template.
func (p Pattern) Population() int {
	n := 0
	for _, row := range p.Rows {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Parse reads a template from r. The name is used in error messages.
func Parse(name string, r io.Reader) (Pattern, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Pattern{}, &ParseError{Path: name, Err: err}
	}
	return parse(name, data)
}

// Load reads a template file from disk.
func Load(file string) (Pattern, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Pattern{}, &ParseError{Path: file, Err: err}
	}
	p, err := parse(file, data)
	if err != nil {
		return Pattern{}, err
	}
	p.Name = strings.TrimSuffix(filepath.Base(file), ".txt")
	return p, nil
}

// Named returns a template from the built-in library.
func Named(name string) (Pattern, error) {
	data, err := library.ReadFile("templates/" + name + ".txt")
	if err != nil {
		return Pattern{}, fmt.Errorf("%q: %w", name, ErrUnknown)
	}
	return parse(name, data)
}

// Resolve returns the library template called ref, or loads ref from disk
// when no such template exists.
func Resolve(ref string) (Pattern, error) {
	p, err := Named(ref)
	if err == nil {
		return p, nil
	}
	return Load(ref)
}

// Names lists the built-in templates in sorted order.
func Names() []string {
	entries, err := library.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

func parse(name string, data []byte) (Pattern, error) {
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	if len(data) == 0 {
		return Pattern{}, &ParseError{Path: name, Err: ErrEmpty}
	}

	p := Pattern{Name: name}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		row := make([]bool, 0, len(line))
		for _, c := range line {
			row = append(row, c != '.')
		}
		if len(row) > p.Width {
			p.Width = len(row)
		}
		p.Rows = append(p.Rows, row)
	}
	p.Height = len(p.Rows)
	if p.Width == 0 {
		return Pattern{}, &ParseError{Path: name, Err: ErrEmpty}
	}
	return p, nil
}
