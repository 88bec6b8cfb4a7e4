package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/schema"
)

// maxSnapshotBytes caps a single response body.
const maxSnapshotBytes = 64 << 20

// NewStore returns the store for a source: an http(s) base URL or a local directory.
func NewStore(source string, timeout time.Duration) contract.SnapshotStore {
	if contract.IsRemoteSource(source) {
		return NewHTTPStore(source, &http.Client{Timeout: timeout})
	}
	return NewDirStore(source)
}

// DirStore reads snapshots from a local directory.
type DirStore struct {
	dir string
}

var _ contract.SnapshotStore = &DirStore{} // Compile-time check

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// List returns the manifest entries, or every *.json file when no manifest exists.
func (s *DirStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, schema.ManifestFileName))
	switch {
	case err == nil:
		return DecodeManifest(data)
	case errors.Is(err, fs.ErrNotExist):
		return ScanDir(s.dir)
	default:
		return nil, err
	}
}

// Read returns the contents of one snapshot file.
func (s *DirStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("snapshot name %q must not contain a path", name)
	}
	return os.ReadFile(filepath.Join(s.dir, name))
}

// Location returns the directory path.
func (s *DirStore) Location() string {
	return s.dir
}

// HTTPStore reads snapshots from a static file server.
// The server must publish manifest.json next to the snapshot files.
type HTTPStore struct {
	base   *url.URL
	raw    string
	client *http.Client
}

var _ contract.SnapshotStore = &HTTPStore{} // Compile-time check

// NewHTTPStore creates a store for baseURL. A nil client uses http.DefaultClient.
func NewHTTPStore(baseURL string, client *http.Client) *HTTPStore {
	if client == nil {
		client = http.DefaultClient
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		u = nil
	}
	return &HTTPStore{base: u, raw: baseURL, client: client}
}

// List fetches and decodes the manifest.
func (s *HTTPStore) List(ctx context.Context) ([]string, error) {
	data, err := s.get(ctx, schema.ManifestFileName)
	if err != nil {
		return nil, err
	}
	return DecodeManifest(data)
}

// Read fetches one snapshot file. Names must be plain file names under the base URL.
func (s *HTTPStore) Read(ctx context.Context, name string) ([]byte, error) {
	if name == "" || name != path.Base(name) || name == ".." {
		return nil, fmt.Errorf("snapshot name %q must not contain a path", name)
	}
	return s.get(ctx, name)
}

// Location returns the base URL.
func (s *HTTPStore) Location() string {
	return s.raw
}

func (s *HTTPStore) get(ctx context.Context, name string) ([]byte, error) {
	if s.base == nil {
		return nil, fmt.Errorf("invalid base URL %q", s.raw)
	}
	target := *s.base
	target.Path = path.Join("/", s.base.Path, name)
	target.RawPath = ""

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", target.String(), resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
}
