package analysis

import (
	"sort"
	"strings"
)

// Ambiguity is one concatenated spelling that admits more than one
// segmentation into known words. These are exactly the spellings a
// space-free rendering cannot write unambiguously.
type Ambiguity struct {
	Joined   string
	Readings []string
}

// Ambiguities scans every combination-with-replacement of k words (order
// fixed by the input list, as in the original scan) and reports each joined
// spelling formed by more than one combination. Results are sorted by the
// joined spelling.
func Ambiguities(words []string, k int) []Ambiguity {
	if k <= 0 || len(words) == 0 {
		return nil
	}
	ways := make(map[string][]string)
	combo := make([]string, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			joined := strings.Join(combo, "")
			ways[joined] = append(ways[joined], strings.Join(combo, " "))
			return
		}
		for i := start; i < len(words); i++ {
			combo[depth] = words[i]
			walk(i, depth+1)
		}
	}
	walk(0, 0)

	var out []Ambiguity
	for joined, readings := range ways {
		if len(readings) > 1 {
			out = append(out, Ambiguity{Joined: joined, Readings: readings})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Joined < out[j].Joined })
	return out
}
