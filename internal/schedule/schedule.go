package schedule

import (
	"sort"
	"time"

	"postcraft/internal/platform"
)

// NextOptimalTime returns the first high-engagement window for p strictly after now.
func NextOptimalTime(p platform.Platform, now time.Time) time.Time {
	return NextWindow(now, p.Profile().Windows)
}

// NextWindow scans forward from now through the weekly windows, in calendar
// order and in now's location, and returns the first slot strictly after now.
// A non-empty list always matches within seven days.
func NextWindow(now time.Time, windows []platform.Window) time.Time {
	ordered := append([]platform.Window(nil), windows...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Day != ordered[j].Day {
			return ordered[i].Day < ordered[j].Day
		}
		return ordered[i].Hour < ordered[j].Hour
	})
	y, m, d := now.Date()
	loc := now.Location()
	for offset := 0; offset <= 7; offset++ {
		day := time.Date(y, m, d+offset, 12, 0, 0, 0, loc).Weekday()
		for _, w := range ordered {
			if w.Day != day {
				continue
			}
			cand := time.Date(y, m, d+offset, w.Hour, 0, 0, 0, loc)
			if cand.After(now) {
				return cand
			}
		}
	}
	// no windows configured
	return now.Add(time.Hour)
}

// Upcoming returns the next n windows for p after now, in order.
func Upcoming(p platform.Platform, now time.Time, n int) []time.Time {
	if n < 0 {
		n = 0
	}
	out := make([]time.Time, 0, n)
	cur := now
	for i := 0; i < n; i++ {
		cur = NextOptimalTime(p, cur)
		out = append(out, cur)
	}
	return out
}
