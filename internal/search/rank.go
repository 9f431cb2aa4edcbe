package search

import (
	"sort"
	"strings"
)

// Rank orders results by relevance to the user's original query. The order
// is a fixed tie-break cascade, each stage only deciding ties the previous
// stage left open:
//
//  1. exact case-insensitive title match
//  2. title starts with the query
//  3. title contains every query word longer than two characters
//  4. descending ratingsCount x averageRating
//
// The sort is stable, so equal records keep their provider order and the
// whole pipeline stays deterministic.
func Rank(results []SearchResult, query string) {
	queryLower := strings.ToLower(query)
	words := queryWords(queryLower)

	sort.SliceStable(results, func(i, j int) bool {
		a := strings.ToLower(results[i].Title)
		b := strings.ToLower(results[j].Title)

		exactA, exactB := a == queryLower, b == queryLower
		if exactA != exactB {
			return exactA
		}

		startsA, startsB := strings.HasPrefix(a, queryLower), strings.HasPrefix(b, queryLower)
		if startsA != startsB {
			return startsA
		}

		allA, allB := containsAll(a, words), containsAll(b, words)
		if allA != allB {
			return allA
		}

		popA := float64(results[i].RatingsCount) * results[i].AverageRating
		popB := float64(results[j].RatingsCount) * results[j].AverageRating
		return popA > popB
	})
}

// queryWords splits an already-lowercased query on whitespace and drops
// words too short to discriminate.
func queryWords(queryLower string) []string {
	var words []string
	for _, w := range strings.Fields(queryLower) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

func containsAll(titleLower string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(titleLower, w) {
			return false
		}
	}
	return true
}

// partitionByCover splits results into those with a usable cover image and
// those without, preserving order.
func partitionByCover(results []SearchResult) (with, without []SearchResult) {
	for _, r := range results {
		if hasUsableCover(r) {
			with = append(with, r)
		} else {
			without = append(without, r)
		}
	}
	return with, without
}
