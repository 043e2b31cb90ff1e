package colony

import (
	"math/rand"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/ant-mania/internal/entropy"
)

// GenConfig holds map generation parameters.
type GenConfig struct {
	Colonies int   // Number of colonies to place
	Width    int   // Site grid width
	Height   int   // Site grid height
	Seed     int64 // Random seed (0 = entropy-derived)
}

// DefaultGenConfig returns a mid-sized map suitable for demo runs.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Colonies: 24,
		Width:    14,
		Height:   14,
		Seed:     0,
	}
}

// Generate builds a random colony map. Grid cells are scored with layered
// simplex noise, the best-scoring cells become colonies, and each colony is
// tunneled to its nearest neighbor along its row and column. Tunnels come in
// reciprocal pairs, so every map it produces reads the same forwards and
// backwards: A east=B implies B west=A.
func Generate(cfg GenConfig) []Colony {
	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.Seed()
	}
	if cfg.Colonies > cfg.Width*cfg.Height {
		cfg.Colonies = cfg.Width * cfg.Height
	}

	noise := opensimplex.NewNormalized(seed)
	rng := rand.New(rand.NewSource(seed + 1))

	// Score every cell for colony desirability.
	type site struct {
		x, y  int
		score float64
	}
	sites := make([]site, 0, cfg.Width*cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			s := octaveNoise(noise, float64(x), float64(y), 3, 0.18, 0.5)
			sites = append(sites, site{x: x, y: y, score: s})
		}
	}

	// Best cells first; ties broken by position so a seed always yields the
	// same map.
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].score != sites[j].score {
			return sites[i].score > sites[j].score
		}
		if sites[i].y != sites[j].y {
			return sites[i].y < sites[j].y
		}
		return sites[i].x < sites[j].x
	})
	sites = sites[:cfg.Colonies]

	names := generateNames(rng, len(sites))
	colonies := make([]Colony, len(sites))
	grid := make([]int, cfg.Width*cfg.Height)
	for i := range grid {
		grid[i] = None
	}
	for i, s := range sites {
		colonies[i] = New(names[i])
		grid[s.y*cfg.Width+s.x] = i
	}

	// Tunnel each colony to the nearest occupied cell eastward and southward;
	// the reciprocal west/north tunnels come for free.
	for i, s := range sites {
		for x := s.x + 1; x < cfg.Width; x++ {
			if j := grid[s.y*cfg.Width+x]; j != None {
				colonies[i].AddTunnel(East, j)
				colonies[j].AddTunnel(West, i)
				break
			}
		}
		for y := s.y + 1; y < cfg.Height; y++ {
			if j := grid[y*cfg.Width+s.x]; j != None {
				colonies[i].AddTunnel(South, j)
				colonies[j].AddTunnel(North, i)
				break
			}
		}
	}

	return colonies
}

// octaveNoise layers multiple noise frequencies for less uniform scoring.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
