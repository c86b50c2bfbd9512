// Package diplomacy implements the order adjudicator for the board game
// Diplomacy: a deterministic function that, given a map, a set of unit
// positions, and a set of orders for one phase, computes the outcome of
// every order and the resulting world state.
//
// The package is organized around three independent phase resolvers that
// share the same geography (Map) and order model:
//
//   - ResolveOrders adjudicates a movement phase, including the mutually
//     recursive support/convoy/dislodge dependencies between orders. It
//     breaks cycles using Kruijswijk's Szykman backtracking rule so that
//     convoy paradoxes terminate with a well-defined verdict.
//   - ResolveRetreats adjudicates a retreat phase for units dislodged by
//     the preceding movement phase.
//   - ResolveBuildOrders adjudicates a winter adjustment phase (builds and
//     forced disbands).
//
// Every resolver is a pure function of its inputs: it holds no long-lived
// mutable state and performs no I/O. Human-readable order notation lives
// in the sibling notation package, which is not imported by this package.
package diplomacy
