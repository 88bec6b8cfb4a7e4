package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path is stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.Equal(t, path, f.Name())
		assert.FileExists(t, path)
	})
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "facebook/react", 20, "facebook/react"},
		{"truncated", "facebook/react", 10, "...k/react"},
		{"width too small", "facebook/react", 3, "facebook/react"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("perhaps")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b ,"))
	assert.Nil(t, SplitList(""))
}
