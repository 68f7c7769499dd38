// Package layout assigns grid columns to concurrent time blocks so that
// overlapping blocks on a day render side by side without colliding.
//
// Layout is a two-pass interval partitioning:
//   - Column pass: blocks sorted by start minute take the smallest column not
//     held by a still-active block
//   - Width pass: every block in an overlap cluster (the connected component
//     of the overlap graph) reports the same TotalColumns
package layout

import (
	"slices"
	"strings"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

// Block is one interval to place.
type Block struct {
	ID       string                `json:"id"`
	Interval schedule.TimeInterval `json:"interval"`
}

// Placement is a Block annotated with its grid column.
type Placement struct {
	Block

	// Column is the zero-based column index
	Column int `json:"column"`

	// TotalColumns is the column count shared by the block's overlap cluster
	TotalColumns int `json:"totalColumns"`
}

// active is a block still occupying a column.
type active struct {
	day    schedule.Day
	column int
	end    int
}

// LayoutDay places blocks that fall on a single day. Placements are returned
// in layout order: start minute ascending, ties broken by id, then input order.
// Blocks on different days never overlap, so mixed input is placed
// independently per day but sorted together.
func LayoutDay(blocks []Block) []Placement {
	placements := make([]Placement, len(blocks))
	for i, b := range blocks {
		placements[i] = Placement{Block: b}
	}
	slices.SortStableFunc(placements, func(a, b Placement) int {
		if a.Interval.Start != b.Interval.Start {
			return a.Interval.Start - b.Interval.Start
		}
		return strings.Compare(a.ID, b.ID)
	})

	assignColumns(placements)
	assignTotals(placements)

	return placements
}

// assignColumns gives each placement the smallest free column.
func assignColumns(placements []Placement) {
	var running []active
	for i := range placements {
		p := &placements[i]

		kept := running[:0]
		for _, a := range running {
			if a.day != p.Interval.Day || a.end > p.Interval.Start {
				kept = append(kept, a)
			}
		}
		running = kept

		used := make(map[int]bool, len(running))
		for _, a := range running {
			if a.day == p.Interval.Day {
				used[a.column] = true
			}
		}
		column := 0
		for used[column] {
			column++
		}

		p.Column = column
		running = append(running, active{day: p.Interval.Day, column: column, end: p.Interval.End})
	}
}

// assignTotals sets TotalColumns to 1 + the highest column of each overlap cluster.
//
// In start order, the connected components of an interval overlap graph are
// contiguous runs: a block joins the current run iff it starts before the
// run's furthest end.
func assignTotals(placements []Placement) {
	byDay := make(map[schedule.Day][]int)
	var days []schedule.Day
	for i, p := range placements {
		if _, ok := byDay[p.Interval.Day]; !ok {
			days = append(days, p.Interval.Day)
		}
		byDay[p.Interval.Day] = append(byDay[p.Interval.Day], i)
	}

	for _, day := range days {
		indices := byDay[day]
		runStart, runEnd := 0, 0
		for k, idx := range indices {
			iv := placements[idx].Interval
			if k > 0 && iv.Start >= runEnd {
				closeRun(placements, indices[runStart:k])
				runStart = k
			}
			if k == runStart {
				runEnd = iv.End
			} else {
				runEnd = max(runEnd, iv.End)
			}
		}
		if len(indices) > 0 {
			closeRun(placements, indices[runStart:])
		}
	}
}

func closeRun(placements []Placement, run []int) {
	highest := 0
	for _, idx := range run {
		highest = max(highest, placements[idx].Column)
	}
	for _, idx := range run {
		placements[idx].TotalColumns = highest + 1
	}
}

// LayoutWeek partitions blocks by day and lays out each day independently.
// Days without blocks are absent from the result.
func LayoutWeek(blocks []Block) map[schedule.Day][]Placement {
	byDay := make(map[schedule.Day][]Block)
	for _, b := range blocks {
		byDay[b.Interval.Day] = append(byDay[b.Interval.Day], b)
	}

	out := make(map[schedule.Day][]Placement, len(byDay))
	for day, dayBlocks := range byDay {
		out[day] = LayoutDay(dayBlocks)
	}
	return out
}
