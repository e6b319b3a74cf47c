// Package app hosts one word-synthesis session.
//
// A Session owns its context accumulator, fusion engine and parameter manager,
// serializes calls from host goroutines and drives frame ticks from a clock.
package app
