package patterns

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-life/internal/life"
)

func TestFromRowsFlipsToYUp(t *testing.T) {
	p := FromRows("test", "Test",
		".X.",
		"..X",
		"XXX",
	)

	if p.Width != 3 || p.Height != 3 {
		t.Errorf("size = %dx%d, expected 3x3", p.Width, p.Height)
	}

	expected := []life.Coord{
		life.C(1, 2),
		life.C(2, 1),
		life.C(0, 0), life.C(1, 0), life.C(2, 0),
	}
	if !reflect.DeepEqual(p.Cells, expected) {
		t.Errorf("Cells = %v, expected %v", p.Cells, expected)
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, p := range List() {
		names = append(names, p.Name)
		if len(p.Cells) == 0 {
			t.Errorf("pattern %q has no cells", p.Name)
		}
	}

	expected := []string{"beacon", "blinker", "block", "glider", "gosper-gun", "r-pentomino", "toad"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("List() = %v, expected %v", names, expected)
	}

	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestGosperGunShape(t *testing.T) {
	p, err := Get("gosper-gun")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Width != 36 || p.Height != 9 || len(p.Cells) != 36 {
		t.Errorf("gosper gun = %dx%d with %d cells, expected 36x9 with 36", p.Width, p.Height, len(p.Cells))
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(FromRows("block", "Block again", "XX", "XX"))
}

func TestUpdatesCentersPattern(t *testing.T) {
	b, err := life.NewBoard(life.BoardOptions{Width: 8, Height: 6, CellSize: 1})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	p, _ := Get("block")

	updates, err := Updates(b, p)
	if err != nil {
		t.Fatalf("Updates: %v", err)
	}

	expected := []life.Update{
		{Coord: life.C(3, 3), State: life.Alive},
		{Coord: life.C(4, 3), State: life.Alive},
		{Coord: life.C(3, 2), State: life.Alive},
		{Coord: life.C(4, 2), State: life.Alive},
	}
	if !reflect.DeepEqual(updates, expected) {
		t.Errorf("Updates() = %v, expected %v", updates, expected)
	}
}

func TestUpdatesTooLarge(t *testing.T) {
	b, _ := life.NewBoard(life.BoardOptions{Width: 10, Height: 10, CellSize: 1})
	p, _ := Get("gosper-gun")

	if _, err := Updates(b, p); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		cells   int
		w, h    int
		wantErr bool
	}{
		{
			name:  "rows",
			data:  "name: lwss\nrows:\n  - .X..X\n  - X....\n  - X...X\n  - XXXX.\n",
			cells: 9, w: 5, h: 4,
		},
		{
			name:  "cells",
			data:  "name: pair\ncells:\n  - {x: 0, y: 0}\n  - {x: 3, y: 1}\n",
			cells: 2, w: 4, h: 2,
		},
		{name: "missing name", data: "rows: [XX]\n", wantErr: true},
		{name: "no cells", data: "name: empty\n", wantErr: true},
		{name: "both forms", data: "name: x\nrows: [X]\ncells: [{x: 0, y: 0}]\n", wantErr: true},
		{name: "negative cell", data: "name: x\ncells: [{x: -1, y: 0}]\n", wantErr: true},
		{name: "bad yaml", data: "name: [\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseYAML([]byte(tc.data))
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseYAML: %v", err)
			}
			if len(p.Cells) != tc.cells || p.Width != tc.w || p.Height != tc.h {
				t.Errorf("got %d cells %dx%d, expected %d cells %dx%d",
					len(p.Cells), p.Width, p.Height, tc.cells, tc.w, tc.h)
			}
			if p.Title != p.Name {
				t.Errorf("Title should default to name, got %q", p.Title)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.yaml")
	if err := os.WriteFile(path, []byte("name: dot\nrows: [X]\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := Resolve(path)
	if err != nil || p.Name != "dot" {
		t.Errorf("Resolve(file) = %+v, %v", p, err)
	}

	p, err = Resolve("glider")
	if err != nil || p.Name != "glider" {
		t.Errorf("Resolve(name) = %+v, %v", p, err)
	}

	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSeed(t *testing.T) {
	sim, err := life.NewSimulation(life.BoardOptions{Width: 10, Height: 10, CellSize: 10})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}

	p, applied, err := Seed(sim, "glider")
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if p.Name != "glider" || len(applied) != len(p.Cells) {
		t.Errorf("Seed = %q with %d updates, want glider with %d", p.Name, len(applied), len(p.Cells))
	}
	if sim.Population() != len(p.Cells) {
		t.Errorf("population = %d, want %d", sim.Population(), len(p.Cells))
	}

	sim.ToggleRun()
	if _, applied, err := Seed(sim, "block"); err != nil || len(applied) != 0 {
		t.Errorf("Seed while running = %v, %v; want no updates", applied, err)
	}

	if _, _, err := Seed(sim, "no-such-pattern"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}
