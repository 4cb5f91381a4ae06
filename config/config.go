package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the classifier tuning knobs. The zero value is not usable;
// start from DefaultConfig or Load.
type Config struct {
	// OpeningMoveWindow is how many moves from the start of the game the
	// opening point classifications (star point, 3-3, enclosures, ...)
	// stay active.
	OpeningMoveWindow int `mapstructure:"opening_move_window" yaml:"opening_move_window"`
	// CornerBoundary is the side of the square corner region, in lines
	// from the edge. 4 means rows/cols 0-3 count as corner.
	CornerBoundary int `mapstructure:"corner_boundary" yaml:"corner_boundary"`
	// NamedPointBoardDim is the board dimension the named point lists
	// (star, 3-3, 3-4) apply to. They are meaningless on other sizes.
	NamedPointBoardDim int `mapstructure:"named_point_board_dim" yaml:"named_point_board_dim"`
	// LookbackWindow is how many of the mover's own recent stones the
	// shape and enclosure patterns are matched against.
	LookbackWindow int `mapstructure:"lookback_window" yaml:"lookback_window"`

	Patterns PatternTable `mapstructure:"patterns" yaml:"patterns"`
}

// A PointList is a set of (row, col) board points.
type PointList [][2]int

func (p PointList) Contains(row, col int) bool {
	for _, pt := range p {
		if pt[0] == row && pt[1] == col {
			return true
		}
	}
	return false
}

// A ShapePattern names a two-stone shape by its canonical offset: the
// absolute row/col deltas between the new stone and a recent own stone,
// smaller first. A small knight's move is (1,2) under this scheme
// regardless of direction.
type ShapePattern struct {
	Name  string `mapstructure:"name" yaml:"name"`
	Delta [2]int `mapstructure:"delta" yaml:"delta"`
}

// Matches reports whether the given absolute deltas form this shape.
func (s ShapePattern) Matches(dr, dc int) bool {
	if dr > dc {
		dr, dc = dc, dr
	}
	return dr == s.Delta[0] && dc == s.Delta[1]
}

// An EnclosurePattern is a corner enclosure template: any of its deltas
// between two own stones in the same corner region matches. The exact
// shapes are not canon anywhere; they are a configurable table on purpose.
type EnclosurePattern struct {
	Name   string   `mapstructure:"name" yaml:"name"`
	Large  bool     `mapstructure:"large" yaml:"large"`
	Deltas [][2]int `mapstructure:"deltas" yaml:"deltas"`
}

func (e EnclosurePattern) Matches(dr, dc int) bool {
	if dr > dc {
		dr, dc = dc, dr
	}
	for _, d := range e.Deltas {
		if dr == d[0] && dc == d[1] {
			return true
		}
	}
	return false
}

// PatternTable is the full set of geometric templates the point
// classifier consults.
type PatternTable struct {
	StarPoints      PointList          `mapstructure:"star_points" yaml:"star_points"`
	ThreeThreePoints PointList         `mapstructure:"three_three_points" yaml:"three_three_points"`
	ThreeFourPoints PointList          `mapstructure:"three_four_points" yaml:"three_four_points"`
	Shapes          []ShapePattern     `mapstructure:"shapes" yaml:"shapes"`
	Enclosures      []EnclosurePattern `mapstructure:"enclosures" yaml:"enclosures"`
}

func (t PatternTable) empty() bool {
	return len(t.StarPoints) == 0 && len(t.ThreeThreePoints) == 0 &&
		len(t.ThreeFourPoints) == 0 && len(t.Shapes) == 0 && len(t.Enclosures) == 0
}

// DefaultConfig returns sensible defaults: the 19x19 named points, the
// standard jump/knight shapes, and small/large corner enclosures.
func DefaultConfig() *Config {
	return &Config{
		OpeningMoveWindow:  20,
		CornerBoundary:     4,
		NamedPointBoardDim: 19,
		LookbackWindow:     3,
		Patterns:           defaultPatternTable(),
	}
}

func defaultPatternTable() PatternTable {
	return PatternTable{
		StarPoints: PointList{
			{3, 3}, {3, 15}, {15, 3}, {15, 15},
		},
		ThreeThreePoints: PointList{
			{2, 2}, {2, 16}, {16, 2}, {16, 16},
		},
		ThreeFourPoints: PointList{
			{2, 3}, {3, 2}, {2, 15}, {15, 2},
			{3, 16}, {16, 3}, {15, 16}, {16, 15},
		},
		Shapes: []ShapePattern{
			{Name: "One-Space Jump", Delta: [2]int{0, 2}},
			{Name: "Two-Space Jump", Delta: [2]int{0, 3}},
			{Name: "Small Knight", Delta: [2]int{1, 2}},
			{Name: "Large Knight", Delta: [2]int{1, 3}},
		},
		Enclosures: []EnclosurePattern{
			{Name: "Corner Enclosure", Deltas: [][2]int{{1, 2}, {0, 2}, {2, 2}}},
			{Name: "Large Enclosure", Large: true, Deltas: [][2]int{{1, 3}, {0, 3}, {2, 3}}},
		},
	}
}

// Load reads a config file (any format viper understands) layered over
// the defaults. GORHAPSODY_* environment variables override the scalar
// knobs.
func Load(path string) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("opening_move_window", def.OpeningMoveWindow)
	v.SetDefault("corner_boundary", def.CornerBoundary)
	v.SetDefault("named_point_board_dim", def.NamedPointBoardDim)
	v.SetDefault("lookback_window", def.LookbackWindow)
	v.SetEnvPrefix("gorhapsody")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Patterns.empty() {
		cfg.Patterns = defaultPatternTable()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadPatternTable reads just a pattern table from a YAML file, for
// callers that want to swap shape templates without touching the knobs.
func LoadPatternTable(path string) (*PatternTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern table: %w", err)
	}
	t := &PatternTable{}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("parse pattern table: %w", err)
	}
	return t, nil
}

func (c *Config) Validate() error {
	if c.OpeningMoveWindow < 0 {
		return fmt.Errorf("opening_move_window must be >= 0, got %d", c.OpeningMoveWindow)
	}
	if c.CornerBoundary < 1 {
		return fmt.Errorf("corner_boundary must be >= 1, got %d", c.CornerBoundary)
	}
	if c.LookbackWindow < 1 {
		return fmt.Errorf("lookback_window must be >= 1, got %d", c.LookbackWindow)
	}
	return nil
}
