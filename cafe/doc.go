// Package cafe implements the tab aggregate of a cafe as a pure event-sourced reducer.
//
// A tab moves through a closed set of states (ClosedTab, OpenedTab, PlacedOrder,
// OrderInProgress, ServedOrder). Execute decides whether a Command is legal in the
// current State and which Events it produces; Step and Apply fold an Event into the
// next State; Evolve combines both. Rejections are returned as Error values inside
// an outcome.Outcome and never as panics.
//
// Everything in this package is a free function over immutable values. Callers that
// run commands concurrently must serialize them per tab identifier.
package cafe
