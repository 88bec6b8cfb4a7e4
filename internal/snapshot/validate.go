package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed snapshot-schema.json
var snapshotSchema []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(snapshotSchema))
})

// SchemaDocument returns the embedded JSON Schema for snapshot files.
func SchemaDocument() []byte {
	return bytes.Clone(snapshotSchema)
}

// Problems validates a document against the snapshot schema and returns
// one human readable line per violation. A nil slice means the document is valid.
// The error is non-nil only when the document is not JSON at all.
func Problems(data []byte) ([]string, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after top-level value")
	}

	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile snapshot schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate snapshot: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}
	return problems, nil
}

// Validate reports whether data is a well-formed snapshot document.
func Validate(data []byte) error {
	problems, err := Problems(data)
	if err != nil {
		return err
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSnapshot, strings.Join(problems, "; "))
	}
	return nil
}
