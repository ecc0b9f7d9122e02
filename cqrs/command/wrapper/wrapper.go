// Package wrapper provides middleware wrappers for command handlers:
// recovery, tracing, metadata injection, logging, metrics, alerting and timeouts.
package wrapper
