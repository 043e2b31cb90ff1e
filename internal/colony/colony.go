// Package colony models the ant world as a flat slice of named nodes joined
// by at most four compass tunnels each. Colonies refer to one another by
// index into the slice that owns them, never by pointer.
package colony

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
)

// None marks an empty tunnel slot or an unoccupied colony.
const None = -1

// Direction labels a tunnel slot.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [4]string{"north", "south", "east", "west"}

// String returns the lowercase label used in map files.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the direction a reciprocal tunnel runs in.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// ParseDirection matches a direction label case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "north":
		return North, nil
	case "south":
		return South, nil
	case "east":
		return East, nil
	case "west":
		return West, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Colony is one node: a display name, up to four outbound tunnels, at most
// one resident ant, and a one-way destroyed flag. Populated tunnel slots are
// mirrored in a bitfield so random direction selection never weighs empty
// slots.
type Colony struct {
	Name string

	tunnels  [4]int
	dirs     uint8 // bit d set iff tunnels[d] is populated
	resident int
	dead     bool
}

// New returns a colony with no tunnels and no resident.
func New(name string) Colony {
	return Colony{
		Name:     name,
		tunnels:  [4]int{None, None, None, None},
		resident: None,
	}
}

// AddTunnel records a one-way tunnel, overwriting any prior tunnel in that
// direction. Target validity is the map builder's responsibility.
func (c *Colony) AddTunnel(d Direction, target int) {
	c.tunnels[d] = target
	c.dirs |= 1 << d
}

// Tunnel returns the target index in the given direction, or None.
func (c *Colony) Tunnel(d Direction) int {
	return c.tunnels[d]
}

// TunnelCount returns the number of populated tunnel slots.
func (c *Colony) TunnelCount() int {
	return bits.OnesCount8(c.dirs)
}

// RandomDirection picks uniformly among the populated tunnel slots by
// walking the bitfield to the n-th set bit. It reports false when the colony
// has no tunnels.
func (c *Colony) RandomDirection(rng *rand.Rand) (Direction, bool) {
	n := bits.OnesCount8(c.dirs)
	if n == 0 {
		return 0, false
	}
	k := rng.Intn(n)
	for d := North; ; d++ {
		if c.dirs&(1<<d) == 0 {
			continue
		}
		if k == 0 {
			return d, true
		}
		k--
	}
}

// RemoveTunnelTo clears every tunnel pointing at target, restoring those
// slots to empty. A colony normally holds at most one such tunnel; clearing
// all of them keeps maps that aim two directions at one neighbor consistent.
// No-op when nothing matches.
func (c *Colony) RemoveTunnelTo(target int) {
	for d := range c.tunnels {
		if c.tunnels[d] == target {
			c.tunnels[d] = None
			c.dirs &^= 1 << d
		}
	}
}

// Resident returns the index of the ant currently here, or None.
func (c *Colony) Resident() int { return c.resident }

// SetResident records the occupying ant (or None).
func (c *Colony) SetResident(ant int) { c.resident = ant }

// Destroyed reports whether this colony has been destroyed.
func (c *Colony) Destroyed() bool { return c.dead }

// MarkDestroyed destroys the colony permanently: the flag is one-way, and a
// destroyed colony keeps no tunnels and no resident. Severing the tunnels
// that point here from elsewhere is the caller's sweep.
func (c *Colony) MarkDestroyed() {
	c.dead = true
	c.tunnels = [4]int{None, None, None, None}
	c.dirs = 0
	c.resident = None
}
