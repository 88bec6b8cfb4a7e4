package outwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadme(t *testing.T) {
	var buf bytes.Buffer
	updated := time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)
	require.NoError(t, writeReadme(&buf, sampleRanked(), updated))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Tracked Repositories\n\n2 repositories ranked by total stars.\n"))
	assert.Contains(t, out, "Project Name")
	assert.Contains(t, out, "[acme/rocket](https://github.com/acme/rocket)")
	assert.Contains(t, out, "[acme/sled](https://github.com/acme/sled)")
	assert.Contains(t, out, "1200")
	assert.Contains(t, out, "2024-03-01")
	assert.True(t, strings.HasSuffix(out, "\n*Last Automatic Update: 2024-03-02T08:30:00*\n"))

	// Rows keep rank order.
	assert.Less(t, strings.Index(out, "acme/rocket"), strings.Index(out, "acme/sled"))

	var tableLines int
	for line := range strings.SplitSeq(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			tableLines++
		}
	}
	assert.Equal(t, 4, tableLines)
}

func TestPrintReadmeToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "README.md")
	cfg := &contract.Config{OutputFile: target}
	require.NoError(t, PrintReadme(sampleRanked()[:1], cfg, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[acme/rocket](https://github.com/acme/rocket)")
	assert.NotContains(t, string(content), "acme/sled")
	assert.Contains(t, string(content), "*Last Automatic Update: 2024-01-01T00:00:00*")
}
