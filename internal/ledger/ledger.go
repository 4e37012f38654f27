// Package ledger persists which documents were migrated, to what header
// generation, with what content hash.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Entry is one document's processing record.
type Entry struct {
	Type          string    `json:"type"` // "manual" or "generated"
	Hash          string    `json:"hash"` // full hex content checksum
	LastUpdated   time.Time `json:"last_updated"`
	HeaderVersion int       `json:"header_version"`
}

// Ledger is the on-disk map from document path to Entry. It is read and
// written whole; the tool runs single-process so no locking is needed.
type Ledger struct {
	path    string
	entries map[string]Entry
}

// Open loads the ledger at path. A missing file is clean state.
func Open(path string) (*Ledger, error) {
	l := &Ledger{
		path:    path,
		entries: map[string]Entry{},
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewDecoder(f).Decode(&l.entries); err != nil {
		return nil, fmt.Errorf("decoding ledger %s: %w", path, err)
	}
	return l, nil
}

// Get returns the entry for a document path, if present.
func (l *Ledger) Get(docPath string) (Entry, bool) {
	e, ok := l.entries[docPath]
	return e, ok
}

// Put records or replaces the entry for a document path.
func (l *Ledger) Put(docPath string, e Entry) {
	l.entries[docPath] = e
}

// Len returns the number of recorded documents.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Paths returns all recorded document paths, sorted.
func (l *Ledger) Paths() []string {
	paths := make([]string, 0, len(l.entries))
	for p := range l.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Save writes the whole ledger back to disk, creating the parent
// directory on first use.
func (l *Ledger) Save() (err error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(l.entries)
}
