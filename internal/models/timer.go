package models

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/util"
)

// NewTimer returns a timer in input mode with a zero target.
func NewTimer() Timer {
	return Timer{Mode: ModeInput}
}

// Apply runs one event through the transition table. Events that are not
// valid for the current mode leave the timer untouched.
func (t Timer) Apply(ev Event) (Timer, Effect) {
	switch t.Mode {
	case ModeInput:
		switch ev {
		case EventQuit:
			return t, EffectQuit
		case EventIncrease:
			t.TargetSeconds++
		case EventDecrease:
			if t.TargetSeconds > 0 {
				t.TargetSeconds--
			}
		case EventConfirm:
			t.ElapsedSeconds = 0
			t.Mode = ModeRunning
			return t, EffectStart
		}
	case ModeRunning:
		if ev == EventCancel {
			t.ElapsedSeconds = 0
			t.Mode = ModeInput
		}
	}
	return t, EffectNone
}

// Advance recomputes elapsed seconds from the time since start, clamped to
// [0, target]. It does nothing outside running mode.
func (t Timer) Advance(since time.Duration) Timer {
	if t.Mode != ModeRunning {
		return t
	}
	t.ElapsedSeconds = util.Clamp(int64(since/time.Second), 0, t.TargetSeconds)
	return t
}

// Remaining is the user-facing countdown value.
func (t Timer) Remaining() int64 {
	return t.TargetSeconds - t.ElapsedSeconds
}

// Expired reports whether a running countdown has reached zero.
func (t Timer) Expired() bool {
	return t.Mode == ModeRunning && t.Remaining() == 0
}

// Progress is the elapsed fraction of the target, 1 when the target is zero.
func (t Timer) Progress() float64 {
	if t.TargetSeconds <= 0 {
		return 1
	}
	return float64(t.ElapsedSeconds) / float64(t.TargetSeconds)
}
