package life

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Simulation owns the board, run state, timer and pending triggers.
// It advances in discrete ticks driven by the caller and is not safe for
// concurrent use.
type Simulation struct {
	board   *Board
	state   RunState
	timer   *Timer
	pending []Trigger
	logger  *log.Logger

	generation uint64
	peak       int
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for setup, input and state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInterval sets the evolution period.
func WithInterval(d time.Duration) Option {
	return func(s *Simulation) {
		s.timer = NewTimer(d)
	}
}

// NewSimulation creates a paused simulation over an empty board.
func NewSimulation(opts BoardOptions, options ...Option) (*Simulation, error) {
	board, err := NewBoard(opts)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		board:  board,
		state:  Initial,
		timer:  NewTimer(DefaultInterval),
		logger: log.New(io.Discard),
	}
	for _, opt := range options {
		opt(s)
	}

	s.logger.Info("board created",
		"width", board.Width(),
		"height", board.Height(),
		"cell_size", board.CellSize(),
		"cells", board.Width()*board.Height(),
		"interval", s.timer.Interval(),
	)
	return s, nil
}

// Board returns the simulated board.
func (s *Simulation) Board() *Board {
	return s.board
}

// State returns the current run state.
func (s *Simulation) State() RunState {
	return s.state
}

// Generation returns the number of rule passes applied so far.
func (s *Simulation) Generation() uint64 {
	return s.generation
}

// Population returns the current number of live cells.
func (s *Simulation) Population() int {
	return s.board.grid.Population()
}

// PeakPopulation returns the largest population observed after any tick
// or edit.
func (s *Simulation) PeakPopulation() int {
	return s.peak
}

// ToggleRun flips between Initial and Running and returns the new state.
func (s *Simulation) ToggleRun() RunState {
	s.state = s.state.Toggle()
	s.logger.Info("run state changed", "state", s.state, "generation", s.generation)
	return s.state
}

// Trigger queues a toggle of c for the next tick. Triggers are only
// accepted while editing; returns false if the trigger was dropped.
func (s *Simulation) Trigger(c Coord) bool {
	if s.state != Initial {
		s.logger.Debug("trigger ignored while running", "coord", c)
		return false
	}
	if !s.board.InRange(c) {
		return false
	}
	s.pending = append(s.pending, Trigger{Coord: c})
	return true
}

// Click maps a pointer press to a cell and queues a trigger for it.
// A zero viewport means the pointer has no known window; the click is
// dropped.
func (s *Simulation) Click(pointer, viewport core.Vec2) (Coord, bool) {
	if viewport.IsZero() {
		s.logger.Debug("click without viewport dropped", "pointer", pointer)
		return Coord{}, false
	}

	c, ok := s.board.MousePosition(pointer, viewport)
	if !ok {
		s.logger.Debug("click outside board", "pointer", pointer)
		return Coord{}, false
	}

	s.logger.Debug("select", "coord", c)
	if !s.Trigger(c) {
		return c, false
	}
	return c, true
}

// Tick advances the simulation by one frame of duration delta and returns
// the updates applied to the board, in order.
//
// While editing, pending triggers are resolved against the pre-tick grid
// and applied; the timer does not advance. While running, pending triggers
// are discarded and one rule pass runs if the timer fires.
func (s *Simulation) Tick(delta time.Duration) []Update {
	switch s.state {
	case Initial:
		if len(s.pending) == 0 {
			return nil
		}
		updates := make([]Update, 0, len(s.pending))
		for _, t := range s.pending {
			if u, ok := s.board.Resolve(t); ok {
				updates = append(updates, u)
			}
		}
		s.pending = s.pending[:0]
		return s.commit(updates)

	case Running:
		s.pending = s.pending[:0]
		if !s.timer.Advance(delta) {
			return nil
		}
		applied := s.commit(Evolve(s.board))
		s.generation++
		return applied
	}
	return nil
}

// Edit applies externally computed updates, such as a seed pattern.
// Edits are only accepted while editing; returns nil otherwise.
func (s *Simulation) Edit(updates []Update) []Update {
	if s.state != Initial {
		return nil
	}
	return s.commit(updates)
}

// Clear kills every live cell while editing and returns the applied updates.
func (s *Simulation) Clear() []Update {
	if s.state != Initial {
		return nil
	}
	alive := s.board.grid.AliveCoords()
	updates := make([]Update, 0, len(alive))
	for _, c := range alive {
		updates = append(updates, Update{Coord: c, State: Dead})
	}
	s.generation = 0
	return s.commit(updates)
}

func (s *Simulation) commit(updates []Update) []Update {
	applied := s.board.Apply(updates)
	if p := s.board.grid.Population(); p > s.peak {
		s.peak = p
	}
	return applied
}
