// Package calendar derives the calendar views from the event cache: the
// set of days carrying events for month-grid decoration, the selected
// day's event list, and the fixed 24-row hour-bucketed day view.
//
// Everything here is pure recomputation from (events, selection,
// settings); the package holds no state of its own. Day matching uses
// calendar-day fields via the schedule package, never UTC-normalized
// instants, so events never drift a day across timezones.
package calendar
