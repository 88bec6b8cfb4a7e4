package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/huangsam/starchart/schema"
)

// DecodeManifest parses a manifest document: a JSON array of snapshot filenames.
// Blank entries, duplicates and the manifest's own name are dropped.
func DecodeManifest(data []byte) ([]string, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", schema.ManifestFileName, err)
	}
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" || name == schema.ManifestFileName {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// EncodeManifest renders filenames as an indented JSON array.
func EncodeManifest(names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ScanDir lists the snapshot files in dir, sorted, excluding the manifest.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == schema.ManifestFileName || !strings.EqualFold(filepath.Ext(name), schema.SnapshotExt) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// WriteManifest scans dir and writes its manifest file, returning the listed names.
func WriteManifest(dir string) ([]string, error) {
	names, err := ScanDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	data, err := EncodeManifest(names)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, schema.ManifestFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return names, nil
}
