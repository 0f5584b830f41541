package experiments

import (
	"fmt"
	"io"

	"hinger/game"

	"gopkg.in/yaml.v3"
)

// Scenario is a named start and goal pair for safe-path comparisons.
type Scenario struct {
	Name  string  `yaml:"name"`
	Start [][]int `yaml:"start"`
	Goal  [][]int `yaml:"goal"`
}

func (s Scenario) States() (start, goal *game.GridState, err error) {
	start, err = game.NewGridState(s.Start)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q start: %w", s.Name, err)
	}
	goal, err = game.NewGridState(s.Goal)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q goal: %w", s.Name, err)
	}
	return start, goal, nil
}

// Scenarios returns the built-in comparison boards.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:  "empty board",
			Start: [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			Goal:  [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		},
		{
			Name:  "block to corner",
			Start: [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}},
			Goal:  [][]int{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}},
		},
		{
			Name:  "block to diagonal",
			Start: [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}},
			Goal:  [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}},
		},
		{
			Name:  "wide block to block",
			Start: [][]int{{1, 1, 1, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}},
			Goal:  [][]int{{1, 1, 0, 0}, {1, 1, 0, 0}, {0, 0, 0, 0}},
		},
		{
			Name:  "block to empty",
			Start: [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}},
			Goal:  [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		},
		{
			Name:  "stacked block",
			Start: [][]int{{2, 2, 0}, {2, 2, 0}, {0, 0, 0}},
			Goal:  [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}},
		},
		{
			Name:  "medium board",
			Start: [][]int{{1, 1, 1, 0}, {1, 1, 2, 0}, {0, 2, 0, 2}},
			Goal:  [][]int{{1, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 0}},
		},
		{
			Name:  "two regions",
			Start: [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}, {1, 2, 1}},
			Goal:  [][]int{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}, {1, 0, 0}},
		},
	}
}

// LoadScenarios decodes a YAML list of scenarios.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	if err := yaml.NewDecoder(r).Decode(&scenarios); err != nil {
		return nil, fmt.Errorf("failed to decode scenarios: %w", err)
	}
	for _, s := range scenarios {
		if _, _, err := s.States(); err != nil {
			return nil, err
		}
	}
	return scenarios, nil
}
