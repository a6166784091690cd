package generator

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"darkmaze/pkg/engine/world"
)

// DeadEndGenerator generates mazes by carving a staircase path between two
// corner regions and growing dead-end corridors off it.
// A generator owns its random source; it is not safe for concurrent use.
// Independent generators may run in parallel.
type DeadEndGenerator struct {
	cfg  Config
	seed int64
	rng  *rand.Rand
	log  logrus.FieldLogger
}

// Option customises a DeadEndGenerator
type Option func(*DeadEndGenerator)

// WithLogger routes generation debug output to l
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *DeadEndGenerator) {
		if l != nil {
			g.log = l
		}
	}
}

// New validates cfg and returns a generator. A RandomSeed config is replaced
// by a time-derived seed, which Seed reports.
func New(cfg Config, opts ...Option) (*DeadEndGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == RandomSeed {
		seed = entropySeed()
	}

	g := &DeadEndGenerator{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		log:  discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// entropySeed returns a non-negative seed from the wall clock, so it can
// never collide with the RandomSeed sentinel
func entropySeed() int64 {
	return time.Now().UnixNano() & (1<<62 - 1)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Name returns the name of this generator
func (g *DeadEndGenerator) Name() string {
	return "Dead End"
}

// Config returns the configuration the generator was built with
func (g *DeadEndGenerator) Config() Config {
	return g.cfg
}

// Seed returns the effective seed of the random source
func (g *DeadEndGenerator) Seed() int64 {
	return g.seed
}

// Generate builds a new maze. Each call continues drawing from the same
// random source, so successive calls return different mazes while the whole
// sequence stays reproducible from the seed.
func (g *DeadEndGenerator) Generate() (*Maze, error) {
	r := newRun(g.cfg, g.rng)
	log := g.log.WithFields(logrus.Fields{
		"seed":   g.seed,
		"width":  g.cfg.Width,
		"height": g.cfg.Height,
	})

	r.chooseEndpoints()
	log.WithFields(logrus.Fields{"start": r.start, "end": r.end}).Debug("endpoints chosen")

	r.carvePath()
	log.WithField("path_len", len(r.path)).Debug("main path carved")

	branched := r.growDeadEnds()
	log.WithField("branch_cells", branched).Debug("dead ends grown")

	treasure := r.placeTreasure()
	enemies := r.placeEnemies()
	log.WithFields(logrus.Fields{"treasure": treasure, "enemies": enemies}).Debug("markers placed")

	r.markEndpoints()

	m := r.maze(g.seed)
	if err := Validate(m); err != nil {
		log.WithError(err).Error("generated maze failed validation")
		return nil, fmt.Errorf("generate: %w", err)
	}
	return m, nil
}

// run is the state of a single generation pass. It is created by Generate and
// never shared.
type run struct {
	cfg   Config
	rng   *rand.Rand
	grid  *world.Grid
	path  []world.Coord
	start world.Coord
	end   world.Coord
}

func newRun(cfg Config, rng *rand.Rand) *run {
	return &run{
		cfg:  cfg,
		rng:  rng,
		grid: world.NewGrid(cfg.Width, cfg.Height),
	}
}

// chooseEndpoints picks the start in the low quarter and the end in the high
// quarter of both axes
func (r *run) chooseEndpoints() {
	qx, qy := r.cfg.Width/4, r.cfg.Height/4
	r.start = world.Coord{X: r.rng.Intn(qx), Y: r.rng.Intn(qy)}
	r.end = world.Coord{
		X: (r.cfg.Width - 1) - r.rng.Intn(qx),
		Y: (r.cfg.Height - 1) - r.rng.Intn(qy),
	}

	// Both endpoints occupy their cells from the outset so that no corridor
	// can grow alongside them.
	r.grid.Set(r.start, world.Start)
	r.grid.Set(r.end, world.End)
}

// markEndpoints writes the authoritative start and end markers
func (r *run) markEndpoints() {
	r.grid.Set(r.start, world.Start)
	r.grid.Set(r.end, world.End)
}

func (r *run) maze(seed int64) *Maze {
	path := make([]world.Coord, len(r.path))
	copy(path, r.path)
	return &Maze{
		grid:  r.grid,
		path:  path,
		start: r.start,
		end:   r.end,
		seed:  seed,
	}
}
