package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Hazard-Board/internal/board"
)

// ErrInvalidScenario is returned when a scenario file does not describe a valid board.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// UnitSpec is one unit entry in a scenario file.
type UnitSpec struct {
	Side string `yaml:"side"`
	Kind string `yaml:"kind"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
}

// HazardSpec is one hazard entry in a scenario file.
type HazardSpec struct {
	Axis  string `yaml:"axis"`
	Coord int    `yaml:"coord"`
	Kind  string `yaml:"kind"`
	Level int    `yaml:"level"`
}

// ScenarioSpec is the on-disk scenario layout.
type ScenarioSpec struct {
	Name    string       `yaml:"name"`
	Lineup  string       `yaml:"lineup"` // "standard" places the stock lineup before Units
	Units   []UnitSpec   `yaml:"units"`
	Hazards []HazardSpec `yaml:"hazards"`
}

// Scenario is a decoded, typed scenario.
type Scenario struct {
	Name    string
	Units   []board.Unit
	Hazards []board.Hazard
}

// DefaultScenario is the stock lineup with no hazards.
func DefaultScenario() Scenario {
	return Scenario{Name: "standard", Units: board.StandardLineup()}
}

// ParseScenario decodes scenario YAML and converts names to board types.
// Bounds are checked later by the board, which knows the grid size.
func ParseScenario(data []byte) (Scenario, error) {
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	sc := Scenario{Name: spec.Name}
	switch spec.Lineup {
	case "":
	case "standard":
		sc.Units = board.StandardLineup()
	default:
		return Scenario{}, fmt.Errorf("%w: unknown lineup %q", ErrInvalidScenario, spec.Lineup)
	}

	for i, u := range spec.Units {
		side, err := board.ParseSide(u.Side)
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: unit %d: %w", ErrInvalidScenario, i, err)
		}
		kind, err := board.ParseUnitKind(u.Kind)
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: unit %d: %w", ErrInvalidScenario, i, err)
		}
		sc.Units = append(sc.Units, board.Unit{Side: side, Kind: kind, Row: u.Row, Col: u.Col})
	}

	for i, h := range spec.Hazards {
		axis, err := board.ParseAxis(h.Axis)
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: hazard %d: %w", ErrInvalidScenario, i, err)
		}
		kind, err := board.ParseHazardKind(h.Kind)
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: hazard %d: %w", ErrInvalidScenario, i, err)
		}
		level := h.Level
		if level == 0 {
			level = 1
		}
		if !board.LevelSupported(level) {
			return Scenario{}, fmt.Errorf("%w: hazard %d: level %d: %w", ErrInvalidScenario, i, level, board.ErrUnknownLevel)
		}
		sc.Hazards = append(sc.Hazards, board.Hazard{Axis: axis, Coord: h.Coord, Kind: kind, Level: level})
	}
	return sc, nil
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: read scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// Options converts the scenario into board construction options.
func (s Scenario) Options() []board.Option {
	opts := board.WithLineup(s.Units)
	for _, h := range s.Hazards {
		opts = append(opts, board.WithHazard(h))
	}
	return opts
}

// Apply replaces the units and hazards of an existing board. The board is
// left untouched when the scenario does not fit it.
func (s Scenario) Apply(b *board.Board) (board.Resolution, error) {
	res, err := b.Reset(s.Units, s.Hazards)
	if err != nil {
		return res, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return res, nil
}
