// Package sink persists the projected catalog to disk.
package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/calyptra/gamesync/internal/catalog"
)

// File writes the projected catalog as a compact JSON array, truncating and
// overwriting the target path on every run. HTML escaping is disabled so
// non-ASCII names and characters like & survive verbatim, which keeps the
// output byte-stable with previous generations of the file.
type File struct {
	Path string
}

// Write serializes games and commits them to the configured path. An empty
// run still produces a valid [] document rather than null.
func (f *File) Write(games []catalog.Game) error {
	if games == nil {
		games = []catalog.Game{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(games); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	// Encode appends a newline; drop it so the file matches the original
	// generator's output byte for byte.
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}
