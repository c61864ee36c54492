package usecase

import "time"

// Timer is a scheduled callback that can be cancelled before it fires.
type Timer interface {
	Stop() bool
}

type Scheduler interface {
	AfterFunc(delay time.Duration, f func()) Timer
}

type timeScheduler struct{}

// NewScheduler returns a Scheduler backed by the runtime timers.
func NewScheduler() Scheduler {
	return timeScheduler{}
}

func (timeScheduler) AfterFunc(delay time.Duration, f func()) Timer {
	return time.AfterFunc(delay, f)
}
