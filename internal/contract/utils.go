package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	// SuccessColor marks a passing check.
	SuccessColor = color.New(color.FgGreen)
	// FailureColor marks a failing check.
	FailureColor = color.New(color.FgRed, color.Bold)
	// NoticeColor marks informational states such as "no data".
	NoticeColor = color.New(color.FgYellow)
	// AccentColor highlights repository names.
	AccentColor = color.New(color.FgCyan, color.Bold)
)

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName truncates a name to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// SplitList splits a comma-separated list, trimming blanks and dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
