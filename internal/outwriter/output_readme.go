package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// readmeTimestampLayout formats the "Last Automatic Update" footer.
const readmeTimestampLayout = "2006-01-02T15:04:05"

var readmeHeader = []string{"Rank", "Project Name", "Stars", "Forks", "Last Fetched"}

// PrintReadme writes the ranked catalog as a markdown document with a
// "Last Automatic Update" footer stamped with updated.
func PrintReadme(ranked []schema.RankedRepository, cfg *contract.Config, updated time.Time) error {
	if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeReadme(w, ranked, updated)
	}, "Wrote README"); err != nil {
		return fmt.Errorf("error writing markdown output: %w", err)
	}
	return nil
}

func writeReadme(w io.Writer, ranked []schema.RankedRepository, updated time.Time) error {
	if _, err := fmt.Fprintf(w, "# Tracked Repositories\n\n%d repositories ranked by total stars.\n\n", len(ranked)); err != nil {
		return err
	}

	table := tablewriter.NewTable(w, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Formatting.AutoFormat = tw.Off
		cfg.Row.Formatting.AutoWrap = tw.WrapNone
		cfg.Header.Alignment.PerColumn = []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignLeft}
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignLeft}
	})
	table.Header(readmeHeader)

	var data [][]string
	for _, r := range ranked {
		data = append(data, []string{
			strconv.Itoa(r.Rank),
			fmt.Sprintf("[%s](%s)", r.Name, schema.GitHubURL(r.Name)),
			strconv.Itoa(r.TotalStars),
			strconv.Itoa(r.TotalForks),
			r.FetchedAt.Format(time.DateOnly),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n*Last Automatic Update: %s*\n", updated.Format(readmeTimestampLayout))
	return err
}
