package gridmap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridpath/pathfind"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario indicates a scenario file that cannot be turned into queries.
var ErrInvalidScenario = errors.New("gridmap: invalid scenario")

// File is the top-level document of a scenario file.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one path-finding case. It uses either Map, or Grid with Start
// and End. Grid cells keep their decoded YAML types, so a quoted "true" or a
// 1 reaches pathfind unchanged and is reported there.
type Scenario struct {
	Name   string  `yaml:"name"`
	Map    string  `yaml:"map,omitempty"`
	Grid   [][]any `yaml:"grid,omitempty"`
	Start  []int   `yaml:"start,omitempty"`
	End    []int   `yaml:"end,omitempty"`
	Expect *int    `yaml:"expect,omitempty"` // optional expected distance, -1 for unreachable
}

// LoadScenarioFile reads and validates the scenario file at path.
func LoadScenarioFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer f.Close()

	return LoadScenarios(f)
}

// LoadScenarios decodes a YAML scenario document from r and validates every
// scenario. Unknown keys are rejected.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios defined", ErrInvalidScenario)
	}
	for i := range f.Scenarios {
		if err := f.Scenarios[i].Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
	}

	return f.Scenarios, nil
}

// Validate checks that s names exactly one grid source and, for Grid
// scenarios, carries two-element Start and End vectors. A map that
// fails to parse is also reported here.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	hasMap, hasGrid := s.Map != "", s.Grid != nil
	switch {
	case hasMap && hasGrid:
		return fmt.Errorf("%w: %q sets both map and grid", ErrInvalidScenario, s.Name)
	case !hasMap && !hasGrid:
		return fmt.Errorf("%w: %q needs a map or a grid", ErrInvalidScenario, s.Name)
	case hasMap:
		if len(s.Start) != 0 || len(s.End) != 0 {
			return fmt.Errorf("%w: %q takes start and end from the map", ErrInvalidScenario, s.Name)
		}
		if _, err := Parse(s.Map); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidScenario, s.Name, err)
		}
	default:
		if len(s.Start) != 2 || len(s.End) != 2 {
			return fmt.Errorf("%w: %q start and end must be [row, col]", ErrInvalidScenario, s.Name)
		}
	}

	return nil
}

// Query converts a validated scenario into a pathfind.Query.
func (s *Scenario) Query() (pathfind.Query, error) {
	if err := s.Validate(); err != nil {
		return pathfind.Query{}, err
	}
	if s.Map != "" {
		m, err := Parse(s.Map)
		if err != nil {
			return pathfind.Query{}, err
		}
		return pathfind.Query{Name: s.Name, Grid: m.Grid, Start: m.Start, End: m.End}, nil
	}

	return pathfind.Query{
		Name:   s.Name,
		Values: s.Grid,
		Start:  pathfind.Coord{Row: s.Start[0], Col: s.Start[1]},
		End:    pathfind.Coord{Row: s.End[0], Col: s.End[1]},
	}, nil
}

// Queries converts every scenario, preserving order.
func Queries(scenarios []Scenario) ([]pathfind.Query, error) {
	qs := make([]pathfind.Query, 0, len(scenarios))
	for i := range scenarios {
		q, err := scenarios[i].Query()
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}
