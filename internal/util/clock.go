package util

import "time"

// Clock is the wall-clock source for the countdown.
//
//go:generate mockgen -source=clock.go -destination=../tui/mock_clock_test.go -package=tui
type Clock interface {
	Now() time.Time
}

// SystemClock reads the OS clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
