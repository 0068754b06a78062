package ui

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// clearStatusMsg clears the status line after a delay
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
