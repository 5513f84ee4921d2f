// Package cmd implements the dayplan command line interface.
//
// The agenda command renders the hourly day view, event manages events
// through the same guarded form flow the interactive views use, triage
// lists summarized emails with filters and sorting, and watch runs a
// periodic refresh loop with a Prometheus metrics endpoint. Running
// dayplan with no arguments shows the agenda.
package cmd
