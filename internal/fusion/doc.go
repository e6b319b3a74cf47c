// Package fusion blends the phonetic, semantic and sentiment readings of a word
// into one parameter vector, then shapes it with accumulated context and
// output smoothing. Curated magic words bypass the layer blend.
//
// ProcessWord and ProcessPhrase record into the engine's context. Preview runs
// the same pipeline against a throwaway copy of that context.
package fusion
