package engine

import (
	"fmt"
	"strings"
)

// Fight records one destroyed colony and the ants that collided there. Ants
// lists the ants that proposed moving in, in ant-index order, followed by
// any ant that was standing at the colony when the tick began. At least two
// ants take part in every fight.
type Fight struct {
	Step   int    `json:"step"`
	Colony string `json:"colony"`
	Ants   []int  `json:"ants"`
}

// String renders the fight notice, e.g.
// "Ironhill has been destroyed by ant 3 and ant 7!".
func (f Fight) String() string {
	if len(f.Ants) == 2 {
		return fmt.Sprintf("%s has been destroyed by ant %d and ant %d!", f.Colony, f.Ants[0], f.Ants[1])
	}

	var b strings.Builder
	b.WriteString(f.Colony)
	b.WriteString(" has been destroyed by ants ")
	for i, a := range f.Ants {
		switch {
		case i == 0:
		case i == len(f.Ants)-1:
			b.WriteString(" and ")
		default:
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", a)
	}
	b.WriteString("!")
	return b.String()
}
