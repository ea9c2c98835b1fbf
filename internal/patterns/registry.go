package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	registered = make(map[string]Pattern)
	mu         sync.RWMutex
)

// Register adds a pattern to the registry.
// Typically called from an init() function.
// Panics if a pattern with the same name is already registered.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[p.Name]; exists {
		panic(fmt.Sprintf("patterns: %q already registered", p.Name))
	}
	registered[p.Name] = p
}

// List returns all registered patterns, sorted by name.
func List() []Pattern {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Pattern, 0, len(registered))
	for _, p := range registered {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns a registered pattern by name.
func Get(name string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := registered[name]
	if !ok {
		return Pattern{}, fmt.Errorf("patterns: unknown pattern %q", name)
	}
	return p, nil
}

// Resolve returns the pattern named by ref: a path to a YAML file if ref
// has a .yaml/.yml extension, otherwise a registered name.
func Resolve(ref string) (Pattern, error) {
	ext := strings.ToLower(filepath.Ext(ref))
	if ext == ".yaml" || ext == ".yml" {
		data, err := os.ReadFile(ref)
		if err != nil {
			return Pattern{}, fmt.Errorf("patterns: cannot read %s: %w", ref, err)
		}
		return ParseYAML(data)
	}
	return Get(ref)
}

func init() {
	Register(FromRows("block", "Block",
		"XX",
		"XX",
	))
	Register(FromRows("blinker", "Blinker",
		"XXX",
	))
	Register(FromRows("toad", "Toad",
		".XXX",
		"XXX.",
	))
	Register(FromRows("beacon", "Beacon",
		"XX..",
		"XX..",
		"..XX",
		"..XX",
	))
	Register(FromRows("glider", "Glider",
		".X.",
		"..X",
		"XXX",
	))
	Register(FromRows("r-pentomino", "R-pentomino",
		".XX",
		"XX.",
		".X.",
	))
	Register(FromRows("gosper-gun", "Gosper glider gun",
		"........................X...........",
		"......................X.X...........",
		"............XX......XX............XX",
		"...........X...X....XX............XX",
		"XX........X.....X...XX..............",
		"XX........X...X.XX....X.X...........",
		"..........X.....X.......X...........",
		"...........X...X....................",
		"............XX......................",
	))
}
