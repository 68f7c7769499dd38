// Package stacking links sections that are the same physical class offered
// under several catalog listings (cross-listed or stacked sections, such as
// an undergraduate and a graduate listing taught together).
//
// Two rules are applied in order:
//   - An explicit upstream cross-list identifier links every listing that carries it
//   - Otherwise, sections with the same instructor and an identical meeting-block
//     set (day, start, end, building, room) but different listings are linked
//
// Matching is exact. Sections without a schedule or an instructor are never
// linked by the second rule.
package stacking
