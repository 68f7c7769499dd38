// Package conflict detects scheduling conflicts between course sections.
//
// Two distinct sections conflict when their meeting blocks overlap on the
// same day while they share an instructor (KindInstructor) or a room
// (KindRoom). Detection is an exhaustive pairwise scan and is pure: the
// same input always yields the same records in the same order.
//
// Key behaviors:
//   - Back-to-back meetings ([480,530) and [530,580)) never conflict
//   - At most one record per kind per pair; the first overlapping block pair wins
//   - Sections without scheduled meetings, instructor or location are excluded
//     from the checks that need them
package conflict
