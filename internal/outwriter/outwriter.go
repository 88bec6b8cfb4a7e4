// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/starchart/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for repository names in
// table output based on terminal width and the number of other columns.
func GetMaxTableNameWidth(cfg *contract.Config, otherColumns int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Each numeric column takes about 12 characters with padding, plus borders.
	available := termWidth - otherColumns*12 - 10
	if available < 15 {
		return 15
	}
	if available > 50 {
		return 50
	}
	return available
}

// alignedColumnWidth returns the width of one repository column of an aligned table.
func alignedColumnWidth(cfg *contract.Config, repositories int) int {
	if repositories == 0 {
		return 15
	}
	width := cfg.Width
	if width <= 0 {
		detected, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detected <= 0 {
			detected = 80
		}
		width = detected
	}
	// Date column plus borders take about 16 characters.
	return max(12, min(40, (width-16)/repositories-3))
}
