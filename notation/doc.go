// Package notation implements the human-readable order grammar and the
// compact position notation that sit outside the core adjudicator: parsing
// and formatting text orders of the form "NATION: UNITTYPE REGION COMMAND
// [args]", and encoding/decoding a full game position to a single string
// for logging, fixtures, and debugging.
//
// Neither concern is imported by the diplomacy package. The adjudicator
// consumes and produces typed values only; this package is the external
// collaborator that turns those values into and out of text.
package notation
