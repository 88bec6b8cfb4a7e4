// Package snapshot reads, validates and decodes repository snapshot files
// from a local directory or an HTTP(S) base URL.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/starchart/schema"
)

// ErrInvalidSnapshot marks a document that does not satisfy the snapshot schema.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// ParseError reports a snapshot file that could not be read, validated or decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("snapshot %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// fetchedAtLayouts are tried in order. Fetchers write ISO-8601 timestamps
// with and without a zone; zoneless values are read as UTC.
var fetchedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFetchedAt parses a snapshot fetched_at timestamp.
func ParseFetchedAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range fetchedAtLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized fetched_at timestamp %q", value)
}

// ResolveName returns the canonical repository name of a snapshot.
// The explicit repository field wins; the filename is decoded only as a fallback.
func ResolveName(fileName string, snap schema.RepositorySnapshot) string {
	if schema.ValidRepoName(snap.Repository) {
		return snap.Repository
	}
	return schema.RepoNameFromFileName(fileName)
}

// Parse validates and decodes one snapshot file into a record.
// Any failure is returned as a *ParseError naming the file.
func Parse(fileName string, data []byte) (schema.RepositoryRecord, error) {
	if err := Validate(data); err != nil {
		return schema.RepositoryRecord{}, &ParseError{File: fileName, Err: err}
	}

	var snap schema.RepositorySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return schema.RepositoryRecord{}, &ParseError{File: fileName, Err: err}
	}

	fetchedAt, err := ParseFetchedAt(snap.FetchedAt)
	if err != nil {
		return schema.RepositoryRecord{}, &ParseError{File: fileName, Err: err}
	}

	record := schema.RepositoryRecord{
		Name:        ResolveName(fileName, snap),
		FileName:    fileName,
		TotalStars:  snap.TotalStars,
		FetchedAt:   fetchedAt,
		StarsByDate: snap.StarsByDate,
		ForksByDate: snap.ForksByDate,
	}
	if snap.TotalForks != nil {
		record.TotalForks = *snap.TotalForks
		record.HasForks = true
	}
	if record.StarsByDate == nil {
		record.StarsByDate = map[string]int{}
	}
	if record.ForksByDate == nil {
		record.ForksByDate = map[string]int{}
	}
	return record, nil
}
