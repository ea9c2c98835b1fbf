package patterns

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-life/internal/life"
)

// YAMLPattern represents the YAML structure for a pattern file.
// Either Rows (drawn top to bottom) or Cells (Y up) must be given.
type YAMLPattern struct {
	Name  string     `yaml:"name"`
	Title string     `yaml:"title,omitempty"`
	Rows  []string   `yaml:"rows,omitempty"`
	Cells []YAMLCell `yaml:"cells,omitempty"`
}

// YAMLCell represents a single live cell in YAML format.
type YAMLCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML pattern file.
func ParseYAML(data []byte) (Pattern, error) {
	var yp YAMLPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pattern{}, fmt.Errorf("patterns: yaml unmarshal: %w", err)
	}

	if yp.Name == "" {
		return Pattern{}, errors.New("patterns: missing name")
	}
	title := yp.Title
	if title == "" {
		title = yp.Name
	}

	switch {
	case len(yp.Rows) > 0 && len(yp.Cells) > 0:
		return Pattern{}, fmt.Errorf("patterns: %q defines both rows and cells", yp.Name)
	case len(yp.Rows) > 0:
		return FromRows(yp.Name, title, yp.Rows...), nil
	case len(yp.Cells) > 0:
		p := Pattern{Name: yp.Name, Title: title}
		for _, c := range yp.Cells {
			if c.X < 0 || c.Y < 0 {
				return Pattern{}, fmt.Errorf("patterns: %q has negative cell (%d,%d)", yp.Name, c.X, c.Y)
			}
			p.Cells = append(p.Cells, life.C(c.X, c.Y))
			if c.X+1 > p.Width {
				p.Width = c.X + 1
			}
			if c.Y+1 > p.Height {
				p.Height = c.Y + 1
			}
		}
		return p, nil
	default:
		return Pattern{}, fmt.Errorf("patterns: %q has no cells", yp.Name)
	}
}
