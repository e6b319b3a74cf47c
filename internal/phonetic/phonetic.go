// Package phonetic provides stand-ins for the phonetic analysis layer, which is
// supplied by the host in production.
package phonetic

import "github.com/basedlsg/PLugg-sub000/internal/domain"

// Neutral reports no phonetic signal for any word, so every texture parameter
// falls back to the neutral value.
type Neutral struct{}

func (Neutral) Analyze(string) domain.Fragment {
	return domain.Fragment{}
}

// Fixed returns the same fragment for every word.
type Fixed domain.Fragment

func (f Fixed) Analyze(string) domain.Fragment {
	return domain.Fragment(f).Clone()
}

// Table looks up normalized words and falls back to Neutral.
type Table map[string]domain.Fragment

func (t Table) Analyze(word string) domain.Fragment {
	if f, ok := t[domain.NormalizeWord(word)]; ok {
		return f.Clone()
	}
	return domain.Fragment{}
}
