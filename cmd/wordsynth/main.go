/*
Command wordsynth turns words into an evolving vector of synthesis controls.

Usage:

	wordsynth [command]

Available Commands:

	process     Fuse each word and print the result
	phrase      Fuse a whole phrase
	morph       Simulate the live vector morphing toward a word
	live        Read words from stdin and stream frames
	version     Show build information

Settings come from the environment or a .env file (LOG_LEVEL, METRICS_ADDR,
WEIGHT_SEMANTIC, BLEND_DURATION, ...).
*/
package main

import (
	"log/slog"
	"os"

	apperrors "github.com/basedlsg/PLugg-sub000/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("wordsynth failed", apperrors.AsStructuredError(err).LogAttrs()...)
		os.Exit(1)
	}
}
