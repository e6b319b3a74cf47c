// Package morph moves the live parameter vector toward committed targets.
//
// Each Update runs two stages. An active blend first eases the committed target
// from its source to the blend destination. A momentum model then carries every
// live value toward that target with per-parameter speed. Anticipation can bias
// the momentum stage toward a predicted vector until it expires.
package morph
