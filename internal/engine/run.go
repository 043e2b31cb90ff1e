package engine

import (
	"log/slog"
	"strings"

	"github.com/talgya/ant-mania/internal/colony"
)

// StopReason says why a run ended.
type StopReason uint8

const (
	StopExhausted StopReason = iota // no ant can move again
	StopStepLimit                   // global step cap reached first
)

func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopStepLimit:
		return "step limit"
	}
	return "unknown"
}

// Outcome summarizes a finished run. It is meaningful only when Run
// returned without error.
type Outcome struct {
	Steps  int
	Reason StopReason
}

// Run drives ticks until no ant can move again, or the step cap cuts the
// run short, or a tick surfaces an invalid colony reference. The step cap
// outcome is reported distinctly so callers can tell an early stop from a
// naturally spent population.
func (s *Simulation) Run() (Outcome, error) {
	for s.anyActive() {
		if err := s.step(); err != nil {
			return Outcome{Steps: s.steps}, err
		}
		s.steps++
		if s.steps >= s.maxSteps {
			slog.Info("run stopped early at step cap", "steps", s.steps, "active_ants", s.ActiveAnts())
			return Outcome{Steps: s.steps, Reason: StopStepLimit}, nil
		}
	}
	return Outcome{Steps: s.steps, Reason: StopExhausted}, nil
}

// Link is one surviving tunnel in a report.
type Link struct {
	Dir    colony.Direction
	Target string
}

// Survivor is one non-destroyed colony in the final report.
type Survivor struct {
	Name    string
	Tunnels []Link
}

// String renders the colony in map-file form, tunnels in north/south/east/
// west order: "Ironhill north=Oakvale east=Frostmoor".
func (v Survivor) String() string {
	var b strings.Builder
	b.WriteString(v.Name)
	for _, l := range v.Tunnels {
		b.WriteByte(' ')
		b.WriteString(l.Dir.String())
		b.WriteByte('=')
		b.WriteString(l.Target)
	}
	return b.String()
}

// Survivors reports every non-destroyed colony with its remaining tunnels,
// in colony index order. Tunnels only ever point at other survivors, so the
// report is itself a loadable map.
func (s *Simulation) Survivors() []Survivor {
	out := make([]Survivor, 0, len(s.colonies))
	for i := range s.colonies {
		c := &s.colonies[i]
		if c.Destroyed() {
			continue
		}
		v := Survivor{Name: c.Name}
		for d := colony.North; d <= colony.West; d++ {
			if t := c.Tunnel(d); t != colony.None {
				v.Tunnels = append(v.Tunnels, Link{Dir: d, Target: s.colonies[t].Name})
			}
		}
		out = append(out, v)
	}
	return out
}
