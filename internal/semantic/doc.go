// Package semantic classifies text against keyword categories.
//
// A Classifier owns an injected, immutable category dictionary. It reports per-category
// match counts, the dominant category and a match-weighted blend of category parameters
// and preferred scales. Unmatched input degrades to a neutral category, never an error.
package semantic
