// Package schedule converts between a user's wall-clock intent and the
// canonical persisted datetime, and back.
//
// The canonical representation is a timezone-naive local string
// (CanonicalLayout). A selection of 2024-03-10 and "09:30" stores
// "2024-03-10T09:30:00" and displays as 09:30 everywhere, regardless of
// the runtime zone or any daylight-saving transition near that date.
//
// Two parse operations exist and call sites must choose deliberately:
//
//   - ParseWallClock: textual fields only, for event datetimes
//   - ParseInstant: RFC 3339 absolute instants, for email timestamps
//
// Constructing a time through the environment's local zone and reading
// fields back out of it is exactly the conversion this package exists to
// avoid.
package schedule
