package run

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "bright", "burning", "coherent", "crimson", "dazzling", "diffuse", "dim",
		"focused", "glancing", "golden", "hidden", "infrared", "bent", "lucid", "mirrored",
		"narrow", "oblique", "pale", "polished", "prismatic", "quiet", "scattered", "silver",
		"slanted", "sharp", "steady", "stray", "twisted", "violet", "wandering", "weathered",
	}

	nouns = []string{
		"beam", "ray", "mirror", "prism", "lens", "photon", "glint", "flare",
		"spark", "shadow", "corridor", "lantern", "beacon", "facet", "pane", "halo",
		"arc", "angle", "path", "pulse", "shard", "signal", "spectrum", "lattice",
	}
)

// GenerateName creates a memorable run name in the format "adjective-noun"
func GenerateName() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return adjectives[r.Intn(len(adjectives))] + "-" + nouns[r.Intn(len(nouns))]
}

// GenerateID combines a memorable name with a timestamp
func GenerateID() string {
	timestamp := time.Now().UTC().Format("20060102-150405.000")
	return GenerateName() + "-" + timestamp
}
