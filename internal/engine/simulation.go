// Package engine runs the ant simulation: random walks over the colony
// graph, fight detection, destruction propagation, and the run loop that
// drives ticks until the population or the step budget is spent.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/talgya/ant-mania/internal/colony"
	"github.com/talgya/ant-mania/internal/entropy"
)

// Construction errors. Both are permanent: a simulation without colonies or
// without ants can never start.
var (
	ErrNoColonies = errors.New("no colonies provided")
	ErrNoAnts     = errors.New("no ants requested")
)

// InvalidColonyError reports an ant standing on a colony index outside the
// graph. It aborts the run: the graph handed to New was inconsistent, and no
// fight outcome can produce this state.
type InvalidColonyError struct {
	Ant    int
	Colony int
}

func (e *InvalidColonyError) Error() string {
	return fmt.Sprintf("ant %d references invalid colony %d", e.Ant, e.Colony)
}

// Default caps, applied when Config leaves them zero.
const (
	DefaultMaxMoves = 10_000
	DefaultMaxSteps = 100_000
)

// Config carries the optional knobs for a simulation. The zero value means
// defaults: 10,000 moves per ant, 100,000 ticks per run, fights logged at
// debug level, and a fresh entropy-seeded random source.
type Config struct {
	MaxMoves int        // Per-ant cap on successful moves
	MaxSteps int        // Global cap on ticks
	Verbose  bool       // Log each fight at info level as it happens
	Rand     *rand.Rand // Source for placement and direction picks
}

func (c Config) withDefaults() Config {
	if c.MaxMoves <= 0 {
		c.MaxMoves = DefaultMaxMoves
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = DefaultMaxSteps
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(entropy.Seed()))
	}
	return c
}

// proposal is one ant's candidate move for the current tick.
type proposal struct {
	ant  int
	from int
	to   int
}

// Simulation owns one run: the colony graph, the ant registry, the caps, the
// fight record, and the scratch buffers the step engine reuses every tick.
// All colony and ant mutation happens inside step.
type Simulation struct {
	colonies []colony.Colony
	ants     []ant

	steps    int
	maxMoves int
	maxSteps int
	verbose  bool
	rng      *rand.Rand

	fights []Fight

	// Per-tick scratch. standing and inbound are per-colony counters;
	// touched lists the colonies whose counters are nonzero so a reset
	// costs O(ants), not O(colonies).
	props    []proposal
	standing []int // ants at each colony at tick start
	inbound  []int // proposals targeting each colony this tick
	touched  []int
	kills    []int // ants removed this tick (may repeat)
	razed    []int // colonies destroyed this tick
}

// New builds a simulation over the given graph and places numAnts ants
// uniformly at random. It takes ownership of the colony slice and mutates it
// in place. Placements are independent draws, so two ants may land on one
// colony; the first tick settles any such collision as a fight.
func New(colonies []colony.Colony, numAnts int, cfg Config) (*Simulation, error) {
	if len(colonies) == 0 {
		return nil, ErrNoColonies
	}
	if numAnts <= 0 {
		return nil, ErrNoAnts
	}
	cfg = cfg.withDefaults()

	s := &Simulation{
		colonies: colonies,
		ants:     make([]ant, numAnts),
		maxMoves: cfg.MaxMoves,
		maxSteps: cfg.MaxSteps,
		verbose:  cfg.Verbose,
		rng:      cfg.Rand,
		props:    make([]proposal, 0, numAnts),
		standing: make([]int, len(colonies)),
		inbound:  make([]int, len(colonies)),
		touched:  make([]int, 0, 2*numAnts),
		kills:    make([]int, 0, numAnts),
		razed:    make([]int, 0, numAnts),
	}

	for i := range s.ants {
		at := s.rng.Intn(len(colonies))
		s.ants[i] = ant{colony: at}
		s.colonies[at].SetResident(i)
	}

	slog.Debug("simulation ready",
		"colonies", len(colonies),
		"ants", numAnts,
		"max_moves", s.maxMoves,
		"max_steps", s.maxSteps,
	)
	return s, nil
}

// anyActive reports whether some ant can still move: on the map with moves
// left under the cap. Capped ants stay on the map and still defend their
// colony, but no longer keep the run alive.
func (s *Simulation) anyActive() bool {
	for i := range s.ants {
		a := &s.ants[i]
		if a.colony != colony.None && a.moves < s.maxMoves {
			return true
		}
	}
	return false
}

// ActiveAnts counts ants still on the map below the move cap.
func (s *Simulation) ActiveAnts() int {
	n := 0
	for i := range s.ants {
		a := &s.ants[i]
		if a.colony != colony.None && a.moves < s.maxMoves {
			n++
		}
	}
	return n
}

// Steps returns the number of completed ticks.
func (s *Simulation) Steps() int { return s.steps }

// Fights returns every fight so far, in the order they happened. The slice
// is the simulation's own record; callers must not modify it.
func (s *Simulation) Fights() []Fight { return s.fights }
