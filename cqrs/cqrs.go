// Package cqrs separates state changing commands from read only queries.
//
// Commands and queries share the same shape: a generic handler with
// Execute(ctx, input) and composable wrappers for tracing, logging,
// metrics and the like. See the command and query subpackages.
package cqrs
