package generator

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"rpgame/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate() (*world.Grid, error)
	Name() string
}

// Errors reported by the generator. They are wrapped with context; test with errors.Is.
var (
	ErrInvalidConfig  = errors.New("invalid generator config")
	ErrNoRooms        = errors.New("no rooms to place stairs in")
	ErrNotEnoughRooms = errors.New("stairs need two distinct rooms")
	ErrStairsPlaced   = errors.New("stairs already placed")
	ErrNoCorridor     = errors.New("no corridor could be carved")
)

// Constants for room generation
const (
	minRoomSize = 3
	maxRoomSize = 10

	// minGridSize fits the smallest room plus the wall border on both sides
	minGridSize = minRoomSize + 2
)

// Defaults for a standard 80 column console
const (
	DefaultRows          = 24
	DefaultCols          = 75
	DefaultFillTarget    = 35
	DefaultBatchSize     = 100
	DefaultMaxIterations = 100000
)

// Config holds the construction parameters of a Generator
type Config struct {
	Rows int
	Cols int

	// FillTarget is the percentage of non-wall tiles at which population stops
	FillTarget int

	// BatchSize is the number of iterations between fill rate checks
	BatchSize int

	// MaxIterations caps the total number of room attempts; 0 means no cap.
	// Dense or tiny grids may never reach FillTarget without it.
	MaxIterations int

	Seed int64

	// Logger receives progress messages; nil discards them
	Logger *log.Logger
}

// DefaultConfig returns the standard console configuration
func DefaultConfig() Config {
	return Config{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		FillTarget:    DefaultFillTarget,
		BatchSize:     DefaultBatchSize,
		MaxIterations: DefaultMaxIterations,
		Seed:          1,
	}
}

// Validate checks the configuration for values the generator cannot work with
func (c Config) Validate() error {
	if c.Rows < minGridSize || c.Cols < minGridSize {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, c.Rows, c.Cols, minGridSize, minGridSize)
	}
	if c.FillTarget < 0 || c.FillTarget > 100 {
		return fmt.Errorf("%w: fill target %d outside [0,100]", ErrInvalidConfig, c.FillTarget)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch size %d must be positive", ErrInvalidConfig, c.BatchSize)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations %d must not be negative", ErrInvalidConfig, c.MaxIterations)
	}
	return nil
}

// Generator builds dungeon levels out of rectangular rooms joined by
// corridors. All randomness comes from one seeded source, so a given
// Config always produces the same level.
type Generator struct {
	cfg Config
	rng *rand.Rand
	log *log.Logger
}

// New creates a generator for the given configuration
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		log: logger,
	}, nil
}

// Name returns the name of this generator
func (g *Generator) Name() string {
	return "Rooms and Corridors"
}

// Config returns the generator's configuration
func (g *Generator) Config() Config {
	return g.cfg
}

// SetSeed restarts the random source, for reproducible dungeons
func (g *Generator) SetSeed(seed int64) {
	g.cfg.Seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate creates a new grid: rooms and corridors until the fill target is
// reached, then stairs and doors.
func (g *Generator) Generate() (*world.Grid, error) {
	grid := world.NewGrid(g.cfg.Rows, g.cfg.Cols)

	iterations := g.Populate(grid)
	g.log.Printf("populated %dx%d grid in %d iterations: %d rooms, %d corridors, %d%% filled",
		grid.Rows(), grid.Cols(), iterations,
		grid.CountKind(world.KindRoom), grid.CountKind(world.KindCorridor), grid.FillRate())

	if err := g.PlaceStairs(grid); err != nil {
		return nil, fmt.Errorf("placing stairs (seed %d): %w", g.cfg.Seed, err)
	}

	doors := g.PlaceDoors(grid)
	g.log.Printf("placed %d doors", doors)

	return grid, nil
}

// Populate fills the grid with rooms and corridors. Each iteration tries one
// room; when it fits and at least two rooms exist, a corridor is carved from
// it. Every BatchSize iterations the fill rate is compared with the target.
// Returns the number of iterations run.
func (g *Generator) Populate(grid *world.Grid) int {
	total := 0
	batch := 0

	for {
		if room, ok := g.GenerateRoom(grid); ok {
			grid.Commit(room)

			if grid.CountKind(world.KindRoom) > 1 {
				if err := g.CorridorFromRoom(grid, room); err != nil {
					g.log.Printf("room %d: %v", room.ID(), err)
				}
			}
		}

		total++
		batch++

		if batch >= g.cfg.BatchSize {
			fill := grid.FillRate()
			if fill >= g.cfg.FillTarget {
				return total
			}
			g.log.Printf("batch done after %d iterations: %d%% filled, target %d%%", total, fill, g.cfg.FillTarget)
			batch = 0
		}

		if g.cfg.MaxIterations > 0 && total >= g.cfg.MaxIterations {
			g.log.Printf("stopping after %d iterations at %d%% filled, target %d%% not reached", total, grid.FillRate(), g.cfg.FillTarget)
			return total
		}
	}
}

// intRange returns a uniformly random integer in [lo, hi]
func (g *Generator) intRange(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
