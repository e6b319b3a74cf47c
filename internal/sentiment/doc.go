// Package sentiment implements the lexicon-driven sentiment scorer.
//
// The Scorer reads valence and arousal from tiered word lists, applying amplifiers,
// diminishers and negators to the immediately following sentiment-bearing token only.
// MapToSynthParams turns a reading into synthesis parameters with fixed affine formulas.
package sentiment
