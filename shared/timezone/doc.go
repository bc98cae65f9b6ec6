// Package timezone pins every clock read and calendar computation to the
// application timezone configured by APP_TIMEZONE (IANA names such as
// "UTC" or "Europe/London"; unknown names fall back to UTC).
//
// Viewings are stored as a calendar day plus an "HH:MM" time of day. The
// helpers here turn that pair into an instant and compare calendar days so
// that booking and reminder code agree on what "the same day" means:
//
//	start, err := timezone.At(day, "10:30")
//	same := timezone.SameDay(start, other)
package timezone
