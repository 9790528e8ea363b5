package cli

import "github.com/fatih/color"

var (
	headerStyle = color.New(color.FgHiCyan, color.Bold)
	promptStyle = color.New(color.FgHiGreen, color.Bold)
	resultStyle = color.New(color.FgHiWhite)
	errorStyle  = color.New(color.FgHiRed, color.Bold)
	mutedStyle  = color.New(color.FgHiBlack)
)
