package clock

import "time"

// Clock supplies the current time. Scheduling and tracking logic never
// reads the wall clock directly; callers inject a Clock so due-time
// computation stays reproducible under test.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time { return time.Now() }
