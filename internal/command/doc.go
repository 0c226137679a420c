// Package command binds image operations to store keys.
//
// Every operation is a Command: a small value holding its parameters plus a
// source and a destination. Apply runs it against an imaging.Store:
//
//  1. copy the image at the source key (ErrNotFound if absent)
//  2. validate every precondition against the copy
//  3. store the copy at the destination key
//  4. mutate the stored copy
//  5. return it
//
// Validation finishes before the store is touched, so a failed command leaves
// every key unchanged, and a destination equal to the source replaces the
// original only once the copy exists. Commands carry no state besides their
// parameters and may be applied any number of times.
//
// Load and Save follow the same keyed shape but delegate to package codec.
//
// Build maps the operation names of the text dispatcher ("sepia",
// "brighten", "load", ...) to Commands.
package command
