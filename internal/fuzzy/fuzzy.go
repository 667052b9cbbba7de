// Package fuzzy provides approximate string matching over command names and descriptions.
//
// Distances are normalized edit distances in [0,1]: 0 means identical, 1 means nothing
// in common. Matching is case-insensitive.
package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	// SuggestThreshold is the tight threshold used for "did you mean" suggestions.
	SuggestThreshold = 0.6

	// SearchThreshold is the loose threshold used by the command search feature.
	SearchThreshold = 0.4

	// SearchLimit caps the number of command search results.
	SearchLimit = 10
)

// Candidate is one ranked match.
type Candidate struct {
	// Value is the matched corpus string as given.
	Value string

	// Index is the position of Value in the corpus.
	Index int

	// Distance is the normalized edit distance to the query.
	Distance float64
}

// Distance returns the normalized Levenshtein distance between a and b.
func Distance(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}

	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}

// Match ranks every corpus entry by distance to query, closest first.
// Ties keep corpus order.
func Match(query string, corpus []string) []Candidate {
	candidates := make([]Candidate, 0, len(corpus))
	for i, value := range corpus {
		candidates = append(candidates, Candidate{
			Value:    value,
			Index:    i,
			Distance: Distance(query, value),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	return candidates
}

// Best returns the closest corpus entry if its distance is within threshold.
func Best(query string, corpus []string, threshold float64) (Candidate, bool) {
	ranked := Match(query, corpus)
	if len(ranked) == 0 || ranked[0].Distance > threshold {
		return Candidate{}, false
	}
	return ranked[0], true
}
