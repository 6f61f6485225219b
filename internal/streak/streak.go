// Package streak tracks consecutive days with at least one completed session.
package streak

import (
	"errors"
	"time"
)

// ErrBackdated is returned when "now" falls on a calendar day before the last
// active day. How to treat that case (clock skew, imported history) is an open
// product decision, so Next refuses to pick a transition for it.
var ErrBackdated = errors.New("completion is dated before last active day")

// State is the streak state stored on a user profile.
type State struct {
	Count          int
	LastActiveDate time.Time
}

// Next returns the streak state after a completion at now. prev is nil for a
// user who has never completed a session. Days are calendar days in now's
// location; time of day is ignored.
//
// On ErrBackdated the previous state is returned unchanged.
func Next(prev *State, now time.Time) (State, error) {
	if prev == nil {
		return State{Count: 1, LastActiveDate: now}, nil
	}

	diff := DaysBetween(prev.LastActiveDate, now)
	switch {
	case diff < 0:
		return *prev, ErrBackdated
	case diff == 0:
		return State{Count: prev.Count, LastActiveDate: now}, nil
	case diff == 1:
		return State{Count: prev.Count + 1, LastActiveDate: now}, nil
	default:
		return State{Count: 1, LastActiveDate: now}, nil
	}
}

// DaysBetween returns the number of calendar days from the day of `from` to
// the day of `to`, both taken in to's location. It is negative when from is
// on a later day.
func DaysBetween(from, to time.Time) int {
	loc := to.Location()
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.Date()
	// Civil dates are compared at UTC midnight so DST shifts never produce
	// 23h or 25h "days".
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
