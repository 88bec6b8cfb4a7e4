package snapshot

import (
	"errors"
	"testing"
	"time"

	"github.com/huangsam/starchart/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full snapshot", func(t *testing.T) {
		data := []byte(`{
			"repository": "my_org/my_repo",
			"total_stars": 12,
			"total_forks": 3,
			"fetched_at": "2024-01-05T10:00:00Z",
			"stars_by_date": {"2024-01-01": 5, "2024-01-03": 7},
			"forks_by_date": {"2024-01-02": 3}
		}`)
		rec, err := Parse("my_org_my_repo.json", data)
		require.NoError(t, err)

		assert.Equal(t, "my_org/my_repo", rec.Name)
		assert.Equal(t, "my_org_my_repo.json", rec.FileName)
		assert.Equal(t, 12, rec.TotalStars)
		assert.Equal(t, 3, rec.TotalForks)
		assert.True(t, rec.HasForks)
		assert.Equal(t, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), rec.FetchedAt)
		assert.Equal(t, map[string]int{"2024-01-01": 5, "2024-01-03": 7}, rec.StarsByDate)
		assert.Equal(t, map[string]int{"2024-01-02": 3}, rec.ForksByDate)
	})

	t.Run("missing mappings default to empty", func(t *testing.T) {
		rec, err := Parse("django_django.json", []byte(`{"total_stars": 0, "fetched_at": "2024-01-05"}`))
		require.NoError(t, err)

		assert.Equal(t, "django/django", rec.Name)
		assert.NotNil(t, rec.StarsByDate)
		assert.NotNil(t, rec.ForksByDate)
		assert.Empty(t, rec.StarsByDate)
		assert.False(t, rec.HasForks)
	})

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"total_stars": `},
		{"missing total_stars", `{"fetched_at": "2024-01-05"}`},
		{"negative total", `{"total_stars": -1, "fetched_at": "2024-01-05"}`},
		{"string delta", `{"total_stars": 1, "fetched_at": "2024-01-05", "stars_by_date": {"2024-01-01": "x"}}`},
		{"bad date key", `{"total_stars": 1, "fetched_at": "2024-01-05", "stars_by_date": {"01/01/2024": 1}}`},
		{"bad fetched_at", `{"total_stars": 1, "fetched_at": "yesterday at noon"}`},
		{"array document", `[1, 2, 3]`},
		{"trailing garbage", `{"total_stars": 3, "fetched_at": "2024-01-01"} {"broken`},
		{"two documents", `{"total_stars": 3, "fetched_at": "2024-01-01"}{"total_stars": 4, "fetched_at": "2024-01-02"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("broken.json", []byte(tt.data))
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "broken.json", perr.File)
			assert.Contains(t, err.Error(), "broken.json")
		})
	}
}

func TestParseTrailingWhitespace(t *testing.T) {
	rec, err := Parse("a_b.json", []byte("{\"total_stars\": 3, \"fetched_at\": \"2024-01-01\"}\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, rec.TotalStars)
}

func TestResolveName(t *testing.T) {
	assert.Equal(t, "owner/some_repo", ResolveName("owner_some_repo.json", schema.RepositorySnapshot{Repository: "owner/some_repo"}))
	assert.Equal(t, "owner/some/repo", ResolveName("owner_some_repo.json", schema.RepositorySnapshot{}))
	assert.Equal(t, "owner/some/repo", ResolveName("owner_some_repo.json", schema.RepositorySnapshot{Repository: "not-a-name"}))
}

func TestParseFetchedAt(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2024-03-01T12:30:00Z", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-03-01T12:30:00+02:00", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-03-01T12:30:00.123456", time.Date(2024, 3, 1, 12, 30, 0, 123456000, time.UTC)},
		{"2024-03-01 12:30:00", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFetchedAt(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}

	_, err := ParseFetchedAt("March 1st")
	assert.Error(t, err)
}
