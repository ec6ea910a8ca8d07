package maze

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the named parameters of Build.
type Config struct {
	// Width and Height are the grid dimensions in cells.
	Width  int `yaml:"width" validate:"gte=1"`
	Height int `yaml:"height" validate:"gte=1"`
	// Seed drives the random source; 0 selects a fixed default seed.
	Seed int64 `yaml:"seed"`
	// BranchProbability, LoopProbability and BridgeProbability are the
	// growth draws described by Probabilities.
	BranchProbability float64 `yaml:"branch_probability" validate:"gte=0,lte=1"`
	LoopProbability   float64 `yaml:"loop_probability" validate:"gte=0,lte=1"`
	BridgeProbability float64 `yaml:"bridge_probability" validate:"gte=0,lte=1"`
	// EdgeMargin keeps the generation start away from the grid edges.
	EdgeMargin int `yaml:"edge_margin" validate:"gte=0"`
}

// DefaultConfig returns a 62×37 maze with sparse branching, no loops and
// frequent bridges.
func DefaultConfig() Config {
	return Config{
		Width:             62,
		Height:            37,
		Seed:              defaultRNGSeed,
		BranchProbability: 0.1,
		LoopProbability:   0,
		BridgeProbability: 0.8,
		EdgeMargin:        DefaultEdgeMargin,
	}
}

var validate = validator.New()

// Validate checks field ranges and that the grid leaves room for a start
// cell inside the edge margin.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.Width-2*c.EdgeMargin < 1 || c.Height-2*c.EdgeMargin < 1 {
		return errors.Wrapf(ErrGridTooSmall, "%d×%d with margin %d", c.Width, c.Height, c.EdgeMargin)
	}
	return nil
}

// Probabilities returns the growth draws of c.
func (c Config) Probabilities() Probabilities {
	return Probabilities{
		Branch: c.BranchProbability,
		Loop:   c.LoopProbability,
		Bridge: c.BridgeProbability,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "maze: read config %q", path)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "maze: parse config %q", path)
	}
	return cfg, cfg.Validate()
}
