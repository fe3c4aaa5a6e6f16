// Package directory implements a small name directory with explicit
// found/not-found lookup outcomes.
package directory

import "fmt"

// NotFoundError reports a key with no directory entry. A miss is an
// expected outcome of Lookup rather than a failure: callers match it with
// errors.As and handle the absent key explicitly.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user '%s' not in database", e.Key)
}

// Directory maps lookup keys to display names. It is immutable after
// construction and safe for concurrent readers.
type Directory struct {
	entries map[string]string
}

// New builds a directory from the given entries. The map is copied, so the
// caller may reuse or mutate it afterwards.
func New(entries map[string]string) *Directory {
	d := &Directory{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		d.entries[k] = v
	}
	return d
}

// Default returns the stock single-entry directory used by the demo
// tooling and as a test fixture.
func Default() *Directory {
	return New(map[string]string{"johnsmith": "John Smith"})
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Lookup returns the display name recorded for key. The match is exact and
// case-sensitive with no trimming. A miss returns a *NotFoundError naming
// the offending key; there is no other failure mode.
func (d *Directory) Lookup(key string) (string, error) {
	if name, ok := d.entries[key]; ok {
		return name, nil
	}
	return "", &NotFoundError{Key: key}
}
