package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Document is a searchable item with a short name and a longer description.
type Document struct {
	Name        string
	Description string
}

// Result is one ranked search hit.
type Result struct {
	Document Document
	Index    int
	Distance float64
}

// Search ranks documents by the better of name distance and partial description
// distance, keeping those within threshold, closest first, at most limit results.
func Search(query string, docs []Document, threshold float64, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var results []Result
	for i, doc := range docs {
		d := Distance(query, doc.Name)
		if pd := PartialDistance(query, doc.Description); pd < d {
			d = pd
		}
		if d <= threshold {
			results = append(results, Result{Document: doc, Index: i, Distance: d})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// PartialDistance is the smallest distance between query and any same-length window
// of text, so a query found verbatim inside text scores 0.
func PartialDistance(query, text string) float64 {
	q := []rune(strings.ToLower(query))
	t := []rune(strings.ToLower(text))

	if len(q) == 0 {
		return 0
	}
	if len(t) <= len(q) {
		return Distance(query, text)
	}

	best := 1.0
	for start := 0; start+len(q) <= len(t); start++ {
		window := string(t[start : start+len(q)])
		if d := Distance(string(q), window); d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}

	// Whole words get a chance too so a shorter word is not penalized by its neighbours.
	for _, word := range strings.Fields(string(t)) {
		if utf8.RuneCountInString(word) == 0 {
			continue
		}
		if d := Distance(string(q), word); d < best {
			best = d
		}
	}

	return best
}
