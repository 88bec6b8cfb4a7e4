package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/starchart/internal/contract"
)

// LogLoadHeader prints a concise, 2-line header before a catalog load.
func LogLoadHeader(cfg *contract.Config) {
	writeLoadHeader(os.Stderr, cfg)
}

func writeLoadHeader(w io.Writer, cfg *contract.Config) {
	kind := "directory"
	if cfg.IsRemote() {
		kind = "remote"
	}
	_, _ = fmt.Fprintf(w, "🔎 Source: %s (%s, %d workers)\n", cfg.Source, kind, cfg.Workers)

	selection := "top repository"
	if len(cfg.Repositories) > 0 {
		selection = strings.Join(cfg.Repositories, ", ")
	}
	_, _ = fmt.Fprintf(w, "📈 Metric: %s, selection: %s\n", cfg.Metric.Title(), selection)
}
