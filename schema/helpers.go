package schema

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// RepoNameFromFileName recovers "owner/repo" from a snapshot filename by
// replacing every underscore with a slash. This is lossy when an owner or
// repository legitimately contains an underscore; snapshots should carry
// an explicit "repository" field instead.
func RepoNameFromFileName(fileName string) string {
	base := strings.TrimSuffix(path.Base(fileName), SnapshotExt)
	return strings.ReplaceAll(base, "_", "/")
}

// FileNameFromRepoName returns the conventional snapshot filename for "owner/repo".
func FileNameFromRepoName(name string) string {
	return strings.ReplaceAll(name, "/", "_") + SnapshotExt
}

// ValidRepoName reports whether name has the "owner/repo" shape.
func ValidRepoName(name string) bool {
	owner, repo, ok := strings.Cut(name, "/")
	return ok && owner != "" && repo != "" && !strings.Contains(repo, "/")
}

// GitHubURL returns the GitHub page of "owner/repo".
func GitHubURL(name string) string {
	return "https://github.com/" + name
}

// FormatCompact abbreviates large counts: 1234 -> "1.2K", 2500000 -> "2.5M".
// Counts below one thousand are printed in full.
func FormatCompact(n int) string {
	if n < 1_000 {
		return strconv.Itoa(n)
	}
	value, prefix := humanize.ComputeSI(float64(n))
	return fmt.Sprintf("%.1f%s", value, strings.ToUpper(prefix))
}

// FormatDay formats a YYYY-MM-DD date as "Jan 2, 2006". Unparseable input is returned unchanged.
func FormatDay(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}
