package interval

import "time"

// Interval is a half-open [Start, End) slice of the requested fetch window,
// sized so a single API request stays within the remote maximum span.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Chunks tiles [start, end) with consecutive sub-intervals of at most span,
// expressed in loc. Each chunk's end boundary is corrected for DST so that a
// chunk crossing a transition keeps its nominal wall-clock duration instead
// of drifting by the transition's offset change. The next chunk starts where
// the corrected one ended, so the tiling stays contiguous.
//
// start == end yields no chunks. The final chunk may be shorter than span.
func Chunks(start, end time.Time, span time.Duration, loc *time.Location) []Interval {
	var chunks []Interval

	cur := start.In(loc)
	stop := end.In(loc)

	for cur.Before(stop) {
		candidate := cur.Add(span)
		if candidate.After(stop) {
			candidate = stop
		}
		candidate = candidate.In(loc).Add(offsetDelta(cur, candidate))

		chunks = append(chunks, Interval{Start: cur, End: candidate})
		cur = candidate
	}

	return chunks
}

// offsetDelta is the UTC-offset change between the chunk boundaries in their
// timezone. At most one transition can fall inside a 15-day chunk, so the
// single delta covers every case; it is zero when both boundaries share the
// same DST phase.
func offsetDelta(start, end time.Time) time.Duration {
	_, startOffset := start.Zone()
	_, endOffset := end.Zone()
	return time.Duration(startOffset-endOffset) * time.Second
}
