package ptr

import "time"

func To[T any](v T) *T {
	return &v
}

// NonZeroTime is nil for the zero time.
func NonZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
