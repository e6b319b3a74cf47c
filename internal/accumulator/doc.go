// Package accumulator gives analysis a memory with time-based forgetting.
//
// Three tiers are kept: the immediate word, a short-term FIFO of recent words and a
// long-term memory of running parameters and category weights. Long-term values relax
// toward neutral by longTermDecay^elapsedSeconds, measured on an injected clock, so
// forgetting is independent of how often words arrive.
package accumulator
