// Package engine assembles one simulated path per invocation.
//
// A run is a pure function of its parameters plus entropy from an
// explicit rng.Source: it validates structural invariants, derives the
// per-run aggregate correlation and effective drift, then advances the
// underlying state and a fixed-parameter benchmark proxy step by step,
// recording a PathPoint per step and summary statistics at the end.
//
// # Thread safety
//
// An Engine is not safe for concurrent use. For independent parallel
// runs use [Ensemble], which gives each run its own entropy source.
package engine
