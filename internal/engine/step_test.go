package engine

import (
	"errors"
	"testing"

	"github.com/talgya/ant-mania/internal/colony"
)

func TestStepInvalidColonyReference(t *testing.T) {
	s, err := New(pingPongMap(), 1, Config{Rand: testRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	s.ants[0].colony = 99

	err = s.step()
	var ice *InvalidColonyError
	if !errors.As(err, &ice) {
		t.Fatalf("step() error = %v, want *InvalidColonyError", err)
	}
	if ice.Ant != 0 || ice.Colony != 99 {
		t.Errorf("error = %+v, want ant 0, colony 99", ice)
	}

	// Run surfaces the same error instead of continuing.
	if _, err := s.Run(); !errors.As(err, &ice) {
		t.Errorf("Run() error = %v, want *InvalidColonyError", err)
	}
}

// One ant walks into an occupied colony: the mover and the resident both
// die and the colony is destroyed, even though the resident never proposed.
func TestStepFightWithResident(t *testing.T) {
	a := colony.New("A")
	a.AddTunnel(colony.North, 1)
	b := colony.New("B") // no tunnels, its resident can only stand
	s, err := New([]colony.Colony{a, b}, 2, Config{Rand: testRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	place(s, 0, 1)

	if err := s.step(); err != nil {
		t.Fatal(err)
	}

	if !s.colonies[1].Destroyed() {
		t.Fatal("B not destroyed after a move into its resident")
	}
	if s.ants[0].colony != colony.None || s.ants[1].colony != colony.None {
		t.Error("fight participants still on the map")
	}
	if s.colonies[0].Destroyed() {
		t.Error("A destroyed with no collision there")
	}
	if s.colonies[0].TunnelCount() != 0 {
		t.Error("A kept its tunnel to the destroyed B")
	}
	fights := s.Fights()
	if len(fights) != 1 {
		t.Fatalf("got %d fights, want 1", len(fights))
	}
	if fights[0].Colony != "B" {
		t.Errorf("fight colony = %q, want B", fights[0].Colony)
	}
	if len(fights[0].Ants) != 2 {
		t.Errorf("fight ants = %v, want two participants", fights[0].Ants)
	}
}

// Two ants placed on one colony at start collide on tick 1 even when
// neither can move.
func TestStepCoincidentPlacementFight(t *testing.T) {
	s, err := New([]colony.Colony{colony.New("A")}, 2, Config{Rand: testRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	place(s, 0, 0)

	if err := s.step(); err != nil {
		t.Fatal(err)
	}
	if !s.colonies[0].Destroyed() {
		t.Fatal("co-placed colony not destroyed on tick 1")
	}
	if s.ants[0].colony != colony.None || s.ants[1].colony != colony.None {
		t.Error("co-placed ants survived the fight")
	}
}

// An ant that proposes a valid move but loses a fight at home the same tick
// dies where it stood; its proposal must not be applied.
func TestStepKilledMoverDropsIntent(t *testing.T) {
	// C north=A, D south=A, A east=B. Ant 0 at A heads for B while
	// ants 1 and 2 converge on A.
	a := colony.New("A")
	a.AddTunnel(colony.East, 1)
	b := colony.New("B")
	c := colony.New("C")
	c.AddTunnel(colony.North, 0)
	d := colony.New("D")
	d.AddTunnel(colony.South, 0)

	s, err := New([]colony.Colony{a, b, c, d}, 3, Config{Rand: testRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	place(s, 0, 2, 3)

	if err := s.step(); err != nil {
		t.Fatal(err)
	}

	if !s.colonies[0].Destroyed() {
		t.Fatal("A not destroyed by the three-way collision")
	}
	for i := 0; i < 3; i++ {
		if s.ants[i].colony != colony.None {
			t.Errorf("ant %d survived, want removed", i)
		}
		if s.ants[i].moves != 0 {
			t.Errorf("ant %d counted %d moves, want 0", i, s.ants[i].moves)
		}
	}
	if s.colonies[1].Destroyed() {
		t.Error("B destroyed, but nothing collided there")
	}
	if s.colonies[1].Resident() != colony.None {
		t.Error("dead ant 0's move into B was applied")
	}
	fights := s.Fights()
	if len(fights) != 1 {
		t.Fatalf("got %d fights, want 1", len(fights))
	}
	// Proposers in ant-index order, resident last.
	want := []int{1, 2, 0}
	if len(fights[0].Ants) != 3 {
		t.Fatalf("fight ants = %v, want %v", fights[0].Ants, want)
	}
	for i, ai := range want {
		if fights[0].Ants[i] != ai {
			t.Errorf("fight ants = %v, want %v", fights[0].Ants, want)
			break
		}
	}
}

// A capped ant stops roaming but keeps holding its colony: a mover landing
// on it is still a fight.
func TestStepCappedAntDefends(t *testing.T) {
	a := colony.New("A")
	a.AddTunnel(colony.North, 1)
	b := colony.New("B")
	b.AddTunnel(colony.South, 0)
	s, err := New([]colony.Colony{a, b}, 2, Config{MaxMoves: 5, Rand: testRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	place(s, 0, 1)
	s.ants[1].moves = 5 // ant 1 is spent but still at B

	if err := s.step(); err != nil {
		t.Fatal(err)
	}
	if !s.colonies[1].Destroyed() {
		t.Error("capped resident did not trigger a fight")
	}
	if s.ants[1].colony != colony.None {
		t.Error("capped resident survived the fight")
	}
}

// Scratch buffers must not allocate once the simulation is warm.
func TestStepNoAllocs(t *testing.T) {
	s, err := New(pingPongMap(), 1, Config{Rand: testRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.step(); err != nil {
		t.Fatal(err)
	}

	allocs := testing.AllocsPerRun(500, func() {
		if err := s.step(); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Errorf("step allocates %.1f objects per tick, want 0", allocs)
	}
}
