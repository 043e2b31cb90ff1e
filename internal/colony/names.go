package colony

import (
	"math/rand"
	"strconv"
)

var namePrefixes = []string{
	"Iron", "Green", "Ash", "Stone", "Mill", "Cross", "Black",
	"Silver", "Red", "White", "Dark", "Bright", "High", "Low",
	"Old", "New", "Far", "Deep", "Long", "Broad", "Gold", "Frost",
	"Storm", "Thorn", "Elm", "Oak", "Pine", "Copper", "River",
}

var nameSuffixes = []string{
	"hill", "mound", "hollow", "nest", "burrow", "gate", "keep",
	"stead", "wood", "field", "dale", "crest", "vale", "run",
	"town", "bury", "marsh", "well", "brook", "cliff", "moor",
	"ridge", "watch", "fall", "rest", "point", "reach", "warren",
}

// generateNames produces count unique colony names by combining syllables.
// Once the syllable space is exhausted, a numeric suffix keeps names unique.
func generateNames(rng *rand.Rand, count int) []string {
	used := make(map[string]bool, count)
	names := make([]string, 0, count)

	for len(names) < count {
		name := namePrefixes[rng.Intn(len(namePrefixes))] + nameSuffixes[rng.Intn(len(nameSuffixes))]
		if used[name] {
			base := name
			for n := 2; used[name]; n++ {
				name = base + strconv.Itoa(n)
			}
		}
		used[name] = true
		names = append(names, name)
	}

	return names
}
