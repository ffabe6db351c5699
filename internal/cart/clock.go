package cart

import "time"

// Clock abstracts time so the add-debounce window can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock. time.Now carries a monotonic reading,
// which is what the debounce comparison relies on.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
