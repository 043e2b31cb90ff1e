package engine

import (
	"log/slog"

	"github.com/talgya/ant-mania/internal/colony"
)

// step advances the simulation one tick in three phases: every roaming ant
// proposes a move along a random tunnel, every colony where two or more ants
// collide is destroyed together with all participants, and the surviving
// moves are applied. Classification reads tick-start state only, so the
// observable end state does not depend on ant iteration order; index order
// shows up solely in how fight participants are listed.
func (s *Simulation) step() error {
	s.props = s.props[:0]
	s.kills = s.kills[:0]
	s.razed = s.razed[:0]
	for _, ci := range s.touched {
		s.standing[ci] = 0
		s.inbound[ci] = 0
	}
	s.touched = s.touched[:0]

	// Propose.
	for i := range s.ants {
		a := &s.ants[i]
		if a.colony == colony.None {
			continue
		}
		if a.colony < 0 || a.colony >= len(s.colonies) {
			return &InvalidColonyError{Ant: i, Colony: a.colony}
		}
		s.bump(s.standing, a.colony)
		if a.moves >= s.maxMoves {
			continue // capped ants hold their colony but no longer roam
		}
		c := &s.colonies[a.colony]
		d, ok := c.RandomDirection(s.rng)
		if !ok {
			continue // no tunnels, the ant stays put
		}
		to := c.Tunnel(d)
		if s.colonies[to].Destroyed() {
			continue // the drawn tunnel leads to rubble, sit this tick out
		}
		s.props = append(s.props, proposal{ant: i, from: a.colony, to: to})
		s.bump(s.inbound, to)
	}

	// Classify fight sites: two or more ants colliding on one colony,
	// whether standing there, moving in, or both.
	for _, ci := range s.touched {
		if s.standing[ci]+s.inbound[ci] >= 2 {
			s.razed = append(s.razed, ci)
		}
	}

	// Record each fight and mark its participants for removal.
	for _, ci := range s.razed {
		f := Fight{Step: s.steps + 1, Colony: s.colonies[ci].Name}
		for _, p := range s.props {
			if p.to == ci {
				f.Ants = append(f.Ants, p.ant)
				s.kills = append(s.kills, p.ant)
			}
		}
		for ai := range s.ants {
			if s.ants[ai].colony == ci {
				f.Ants = append(f.Ants, ai)
				s.kills = append(s.kills, ai)
			}
		}
		s.fights = append(s.fights, f)
		if s.verbose {
			slog.Info("colony destroyed", "step", f.Step, "colony", f.Colony, "ants", f.Ants)
		} else {
			slog.Debug("colony destroyed", "step", f.Step, "colony", f.Colony, "ants", f.Ants)
		}
	}

	// Resolve destruction before any move lands: destroyed colonies lose
	// their own tunnels and every tunnel in the graph that points at them.
	for _, ci := range s.razed {
		s.colonies[ci].MarkDestroyed()
	}
	if len(s.razed) > 0 {
		for i := range s.colonies {
			for _, ci := range s.razed {
				s.colonies[i].RemoveTunnelTo(ci)
			}
		}
	}

	// Apply removals, then the surviving moves. A move is dropped when its
	// ant fell in a fight elsewhere this tick or its target was destroyed.
	for _, ai := range s.kills {
		a := &s.ants[ai]
		if a.colony == colony.None {
			continue
		}
		c := &s.colonies[a.colony]
		if c.Resident() == ai {
			c.SetResident(colony.None)
		}
		a.colony = colony.None
	}

	for _, p := range s.props {
		if s.ants[p.ant].colony == colony.None {
			continue
		}
		if s.colonies[p.to].Destroyed() {
			continue
		}
		s.colonies[p.from].SetResident(colony.None)
		s.colonies[p.to].SetResident(p.ant)
		s.ants[p.ant].colony = p.to
		s.ants[p.ant].moves++
	}

	return nil
}

// bump increments one per-colony counter, tracking first touches so the
// scratch reset costs O(activity), not O(colonies).
func (s *Simulation) bump(counts []int, ci int) {
	if s.standing[ci] == 0 && s.inbound[ci] == 0 {
		s.touched = append(s.touched, ci)
	}
	counts[ci]++
}
