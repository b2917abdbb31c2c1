// Package similarity scores how alike two strings are and picks the
// closest candidates from a list.
//
// Scores use the Ratcliff/Obershelp sequence-matching ratio: twice the
// number of characters in matching blocks divided by the total length of
// both strings. The matcher itself is go-difflib's SequenceMatcher run over
// runes.
package similarity

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum score for a candidate to count as a close match.
const DefaultCutoff = 0.6

// Ratio returns the similarity of a and b in [0, 1].
// Two empty strings are identical and score 1.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

// QuickRatio returns an upper bound on Ratio computed from character counts alone.
func QuickRatio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).QuickRatio()
}

// RealQuickRatio returns an upper bound on Ratio computed from lengths alone.
func RealQuickRatio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).RealQuickRatio()
}

// Match is a scored candidate.
type Match struct {
	Candidate string
	Score     float64
}

// CloseMatches returns up to n candidates whose similarity to word is at
// least cutoff, best first. Equal scores are ordered by the greater
// candidate first.
//
// It panics if n is not positive or cutoff is outside [0, 1].
func CloseMatches(word string, candidates []string, n int, cutoff float64) []string {
	scored := Score(word, candidates, n, cutoff)
	out := make([]string, len(scored))
	for i, m := range scored {
		out[i] = m.Candidate
	}
	return out
}

// Score is CloseMatches with the scores attached.
func Score(word string, candidates []string, n int, cutoff float64) []Match {
	if n <= 0 {
		panic(fmt.Sprintf("similarity: n must be > 0, got %d", n))
	}
	if cutoff < 0 || cutoff > 1 {
		panic(fmt.Sprintf("similarity: cutoff must be in [0, 1], got %v", cutoff))
	}

	// The word is sequence two so its index is built once and reused.
	m := difflib.NewMatcher(nil, runes(word))

	var matches []Match
	for _, c := range candidates {
		m.SetSeq1(runes(c))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if score := m.Ratio(); score >= cutoff {
			matches = append(matches, Match{Candidate: c, Score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Candidate > matches[j].Candidate
	})

	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
