// Package schedule defines the temporal model shared by every stage of the
// schedule engine.
//
// The types here are plain values. Validation happens once, at construction
// time (NewTimeInterval), so downstream stages only ever see well-formed
// intervals and never re-check them.
//
// Key concepts:
//   - Day: a weekday, Monday through Friday
//   - TimeInterval: a half-open [Start, End) span of minutes on one Day
//   - MeetingBlock: one weekly meeting of a section, with an optional location
//   - Section: one scheduled offering of a course
package schedule
