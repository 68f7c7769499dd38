// Package ingest converts raw registrar schedule exports into validated
// schedule.Section values.
//
// All format coercion happens here: clock strings become minutes, day
// booleans become one MeetingBlock per weekday, blank locations become nil
// and email addresses become instructor identity keys. Anything that cannot
// be coerced is rejected with ErrInvalidRecord so the engine only ever sees
// well-formed input.
package ingest
