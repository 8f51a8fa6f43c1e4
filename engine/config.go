package engine

import (
	"github.com/xwalk-go/xwalk/selector"
)

// MaxProteinDimension is the bounding-box extent, in Ångström, past which
// Run switches from a single whole-structure grid to a local grid rebuilt
// per source atom.
const MaxProteinDimension = 150.0

// DefaultCrossLinkerLength is the default MaxDistance, matching a common
// cross-linker spacer-arm length.
const DefaultCrossLinkerLength = 34.0

// MaxSASDDistance is a hard ceiling on Config.MaxDistance; values above it
// are clamped, since no supported cross-linker reaches further and an
// unbounded search defeats the whole point of the distance bound.
const MaxSASDDistance = 80.0

// DefaultBackboneSolventRadius is the solvent radius used when a selector
// constrains to backbone atoms only.
const DefaultBackboneSolventRadius = 2.0

// DefaultSolventRadius is the default solvent probe radius.
const DefaultSolventRadius = 1.4

// Config holds the tunable parameters for Run.
type Config struct {
	// MaxDistance is the bound past which a pair is reported unreachable.
	// Values above MaxSASDDistance are clamped; Run rejects non-positive
	// values with sasd.ErrBadMaxDistance.
	MaxDistance float64
	// GridCellSize is the occupancy grid's cubic cell edge length.
	GridCellSize float64
	// SolventRadius is added to each atom's van der Waals radius when
	// marking occupancy.
	SolventRadius float64
	// ForceLocalGrid requests local-grid mode even below
	// MaxProteinDimension.
	ForceLocalGrid bool
	// Workers bounds the number of source atoms processed concurrently.
	// Values below 1 are treated as 1.
	Workers int
}

// DefaultConfig returns the package defaults: MaxDistance=34,
// GridCellSize=1, SolventRadius=1.4, Workers=1.
func DefaultConfig() Config {
	return Config{
		MaxDistance:   DefaultCrossLinkerLength,
		GridCellSize:  1.0,
		SolventRadius: DefaultSolventRadius,
		Workers:       1,
	}
}

// Option configures a Config.
type Option func(*Config)

// WithMaxDistance sets the distance bound, clamped to MaxSASDDistance.
func WithMaxDistance(d float64) Option {
	return func(c *Config) {
		if d > MaxSASDDistance {
			d = MaxSASDDistance
		}
		c.MaxDistance = d
	}
}

// WithGridCellSize sets the occupancy grid's cell edge length.
func WithGridCellSize(size float64) Option {
	return func(c *Config) { c.GridCellSize = size }
}

// WithSolventRadius sets the solvent probe radius.
func WithSolventRadius(r float64) Option {
	return func(c *Config) { c.SolventRadius = r }
}

// WithBackboneOnlySolventRadius sets SolventRadius to
// DefaultBackboneSolventRadius, for use alongside a backbone-only selector.
func WithBackboneOnlySolventRadius() Option {
	return func(c *Config) { c.SolventRadius = DefaultBackboneSolventRadius }
}

// WithForceLocalGrid forces local-grid mode regardless of structure size.
func WithForceLocalGrid() Option {
	return func(c *Config) { c.ForceLocalGrid = true }
}

// WithWorkers bounds the number of source atoms processed concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg
}

// Request bundles the selectors and chain/homomeric rules governing which
// atom pairs Run evaluates, mirroring selector.PairSpec.
type Request struct {
	Selector1 selector.Selector
	Selector2 selector.Selector
	Chain     selector.ChainRule
	Homomeric bool
	Directed  bool
}

// PairSpec converts a Request into the selector.PairSpec pair.Enumerate
// expects.
func (r Request) PairSpec() selector.PairSpec {
	return selector.PairSpec{
		Selector1: r.Selector1,
		Selector2: r.Selector2,
		Chain:     r.Chain,
		Homomeric: r.Homomeric,
		Directed:  r.Directed,
	}
}
