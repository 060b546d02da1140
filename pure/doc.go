// Package pure holds the side-effect free part of a collatz run.
//
// Next and StepsUncached are plain functions of their input. Memoizer adds a
// lookup table in front of them: every value a walk passes through is stored
// with its step count, so later walks stop as soon as they reach a value that
// was seen before.
//
// The table is handed in by the caller. The package only requires that a stored
// count is the true count for its key; see package memo for implementations.
package pure
