package colony

import (
	"math/rand"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := GenConfig{Colonies: 16, Width: 10, Height: 10, Seed: 7}
	a := Generate(cfg)
	b := Generate(cfg)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("colony %d differs between runs of the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateCount(t *testing.T) {
	cfg := GenConfig{Colonies: 16, Width: 10, Height: 10, Seed: 3}
	if got := len(Generate(cfg)); got != 16 {
		t.Errorf("generated %d colonies, want 16", got)
	}

	// Requests beyond the grid clamp to the grid size.
	cfg = GenConfig{Colonies: 100, Width: 5, Height: 5, Seed: 3}
	if got := len(Generate(cfg)); got != 25 {
		t.Errorf("generated %d colonies on a 5x5 grid, want 25", got)
	}
}

func TestGenerateValidGraph(t *testing.T) {
	colonies := Generate(GenConfig{Colonies: 24, Width: 12, Height: 12, Seed: 11})

	names := make(map[string]bool, len(colonies))
	for i := range colonies {
		c := &colonies[i]
		if c.Name == "" {
			t.Fatalf("colony %d has no name", i)
		}
		if names[c.Name] {
			t.Errorf("duplicate colony name %q", c.Name)
		}
		names[c.Name] = true

		for d := North; d <= West; d++ {
			j := c.Tunnel(d)
			if j == None {
				continue
			}
			if j < 0 || j >= len(colonies) {
				t.Fatalf("colony %d %v tunnel points out of range: %d", i, d, j)
			}
			if j == i {
				t.Errorf("colony %d has a %v tunnel to itself", i, d)
			}
			if back := colonies[j].Tunnel(d.Opposite()); back != i {
				t.Errorf("tunnel %d-%v->%d is not reciprocal: %v back-tunnel is %d",
					i, d, j, d.Opposite(), back)
			}
		}
	}
}

func TestGenerateNamesUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Beyond the syllable space, so the numeric fallback has to kick in.
	count := len(namePrefixes)*len(nameSuffixes) + 50
	names := generateNames(rng, count)

	if len(names) != count {
		t.Fatalf("got %d names, want %d", len(names), count)
	}
	seen := make(map[string]bool, count)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}
}
