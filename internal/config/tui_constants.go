package config

// Layout constants.
const (
	// FrameMargin is the blank border around the whole view.
	FrameMargin = 2

	// InstructionHeight is the number of rows used by the key hints.
	InstructionHeight = 1

	// MinDisplayWidth is the narrowest the time box is drawn.
	MinDisplayWidth = 12

	// MinDisplayHeight is the shortest the time box is drawn, borders included.
	MinDisplayHeight = 3

	// ErrorHeight is the height of the error region, title included.
	ErrorHeight = 3

	// ProgressWidth is the preferred width of the progress bar.
	ProgressWidth = 40

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
