package state

import (
	"sort"
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Ranker scores a haystack against a query. A false result means no match;
// otherwise larger scores are better matches. Scores for a non-empty query
// are always at least 1.
type Ranker interface {
	Score(haystack, query string) (int, bool)
}

const (
	MatcherFuzzysearch = "fuzzysearch"
	MatcherSahilm      = "sahilm"
)

// RankerByName returns the ranker registered under name. An empty name
// selects the default.
func RankerByName(name string) (Ranker, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MatcherFuzzysearch:
		return FuzzysearchRanker{}, true
	case MatcherSahilm:
		return SahilmRanker{}, true
	default:
		return nil, false
	}
}

// Matchers lists the accepted ranker names.
func Matchers() []string {
	names := []string{MatcherFuzzysearch, MatcherSahilm}
	sort.Strings(names)
	return names
}

const (
	exactBonus     = 3000
	prefixBonus    = 2000
	substringBonus = 1000
	closenessRange = 999
)

// FuzzysearchRanker gates matches with a case-insensitive, unicode
// normalised subsequence test and orders them exact > prefix > substring >
// scattered, breaking ties by edit distance.
type FuzzysearchRanker struct{}

func (FuzzysearchRanker) Score(haystack, query string) (int, bool) {
	if query == "" {
		return 0, true
	}
	distance := fuzzysearch.RankMatchNormalizedFold(query, haystack)
	if distance < 0 {
		return 0, false
	}
	score := 1
	lowerHay := strings.ToLower(haystack)
	lowerQuery := strings.ToLower(query)
	switch {
	case lowerHay == lowerQuery:
		score += exactBonus
	case strings.HasPrefix(lowerHay, lowerQuery):
		score += prefixBonus
	case strings.Contains(lowerHay, lowerQuery):
		score += substringBonus
	}
	if distance < closenessRange {
		score += closenessRange - distance
	}
	return score, true
}

const sahilmOffset = 1000

// SahilmRanker uses the Sublime Text style scoring of sahilm/fuzzy, which
// rewards matches on word boundaries and consecutive runs.
type SahilmRanker struct{}

func (SahilmRanker) Score(haystack, query string) (int, bool) {
	if query == "" {
		return 0, true
	}
	matches := sahilm.Find(query, []string{haystack})
	if len(matches) == 0 {
		return 0, false
	}
	score := matches[0].Score + sahilmOffset
	if score < 1 {
		score = 1
	}
	return score, true
}
