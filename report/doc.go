// Package report runs expanded test cases one at a time, isolates their
// failures and streams one Outcome per case to the registered sinks.
package report
