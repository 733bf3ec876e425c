package domain

import "time"

// Overlaps reports whether the half-open ranges [s1, e1) and [s2, e2)
// share at least one day. A rental ending on day X never conflicts with
// one starting on day X.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// ConflictingIDs returns the ids of every request whose date range
// intersects [start, end), skipping excludeID so a record never conflicts
// with itself. It inspects only what it is given and mutates nothing;
// callers are responsible for pre-filtering the candidate set by
// equipment and status.
func ConflictingIDs(start, end time.Time, requests []RentalRequest, excludeID string) []string {
	var ids []string
	for _, r := range requests {
		if r.ID == excludeID {
			continue
		}
		if Overlaps(start, end, r.StartDate, r.EndDate) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// HasConflict reports whether any request in the set intersects
// [start, end), excluding excludeID.
func HasConflict(start, end time.Time, requests []RentalRequest, excludeID string) bool {
	return len(ConflictingIDs(start, end, requests, excludeID)) > 0
}
