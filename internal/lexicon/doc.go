// Package lexicon ships the default dictionaries: semantic categories, the sentiment
// lexicon and the curated magic words.
//
// Every function returns a fresh value, so callers may inject modified copies without
// affecting other sessions.
package lexicon
