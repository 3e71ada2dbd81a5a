package model

import "time"

// Interval is a date range whose end may be unbounded (nil). Comparisons are
// done at day granularity, inclusive on both ends.
type Interval struct {
	Start time.Time
	End   *time.Time
}

// Blocks reports whether an existing ledger interval collides with a candidate
// interval. The four end-bound combinations are handled explicitly, and the
// check is role-sensitive: an open-ended ledger entry blocks every candidate
// that does not start strictly after it.
func (existing Interval) Blocks(candidate Interval) bool {
	candStart := DateOnly(candidate.Start)

	switch {
	case existing.End == nil && candidate.End == nil:
		return true
	case existing.End == nil:
		return candStart.Compare(DateOnly(existing.Start)) <= 0
	case candidate.End == nil:
		return DateOnly(*existing.End).Compare(candStart) >= 0
	default:
		exStart := DateOnly(existing.Start)
		exEnd := DateOnly(*existing.End)
		candEnd := DateOnly(*candidate.End)
		return !(candEnd.Before(exStart) || candStart.After(exEnd))
	}
}

// DateOnly truncates a timestamp to midnight UTC.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
