package testutil

import "github.com/akyairhashvil/countdown/internal/models"

// TimerBuilder provides fluent API for creating test timers.
type TimerBuilder struct {
	timer models.Timer
}

func NewTimer() *TimerBuilder {
	return &TimerBuilder{timer: models.NewTimer()}
}

func (b *TimerBuilder) WithTarget(seconds int64) *TimerBuilder {
	b.timer.TargetSeconds = seconds
	return b
}

func (b *TimerBuilder) WithElapsed(seconds int64) *TimerBuilder {
	b.timer.ElapsedSeconds = seconds
	return b
}

func (b *TimerBuilder) Running() *TimerBuilder {
	b.timer.Mode = models.ModeRunning
	return b
}

func (b *TimerBuilder) Build() models.Timer {
	return b.timer
}
