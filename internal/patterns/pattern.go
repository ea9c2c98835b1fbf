// Package patterns provides named seed patterns for the simulation.
// Built-in patterns register themselves in init(); custom patterns are read
// from YAML files.
package patterns

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrTooLarge is returned when a pattern does not fit on the board.
var ErrTooLarge = errors.New("patterns: pattern does not fit on board")

// Pattern is a set of live cells relative to the pattern's bottom-left corner.
type Pattern struct {
	Name   string
	Title  string
	Width  int
	Height int
	Cells  []life.Coord
}

// FromRows builds a pattern from text rows drawn top to bottom.
// 'X', 'O' and '*' mark live cells; anything else is dead.
func FromRows(name, title string, rows ...string) Pattern {
	p := Pattern{Name: name, Title: title, Height: len(rows)}
	for i, row := range rows {
		y := len(rows) - 1 - i // top row has the highest Y
		if len(row) > p.Width {
			p.Width = len(row)
		}
		for x, ch := range row {
			if strings.ContainsRune("XO*", ch) {
				p.Cells = append(p.Cells, life.C(x, y))
			}
		}
	}
	return p
}

// Updates returns the updates that place p centered on b.
func Updates(b *life.Board, p Pattern) ([]life.Update, error) {
	if p.Width > b.Width() || p.Height > b.Height() {
		return nil, fmt.Errorf("%w: %q is %dx%d, board is %dx%d",
			ErrTooLarge, p.Name, p.Width, p.Height, b.Width(), b.Height())
	}

	offset := life.C((b.Width()-p.Width)/2, (b.Height()-p.Height)/2)
	updates := make([]life.Update, 0, len(p.Cells))
	for _, c := range p.Cells {
		updates = append(updates, life.Update{Coord: c.Add(offset), State: life.Alive})
	}
	return updates, nil
}

// Seed resolves ref and places the pattern on the simulation's board.
// Seeding only takes effect while the simulation is editable.
func Seed(sim *life.Simulation, ref string) (Pattern, []life.Update, error) {
	p, err := Resolve(ref)
	if err != nil {
		return Pattern{}, nil, err
	}
	updates, err := Updates(sim.Board(), p)
	if err != nil {
		return Pattern{}, nil, err
	}
	return p, sim.Edit(updates), nil
}
