package traits

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"toplist/internal/utils"
)

// ErrMappingExists is returned by Save when the target file already exists.
// Mapping files are hand-edited after the first export, so Save never
// overwrites one; callers treat this as an informational skip.
var ErrMappingExists = errors.New("mapping file already exists")

// Header columns of the persisted mapping file.
const (
	abbrevColumn = "Abk"
	nameColumn   = "Name"
)

// NameMap translates trait abbreviations to display names. Unmapped
// abbreviations fall back to themselves, so Lookup never fails.
type NameMap struct {
	order []string
	names map[string]string
}

// BuildDefault creates the identity mapping (name = abbreviation) for each
// trait id, preserving the given order.
func BuildDefault(ids []string) *NameMap {
	m := &NameMap{names: make(map[string]string, len(ids))}
	for _, id := range ids {
		m.Override(id, id)
	}
	return m
}

// Override upserts a display name for a trait abbreviation.
func (m *NameMap) Override(abbrev, name string) {
	if m.names == nil {
		m.names = make(map[string]string)
	}
	if _, ok := m.names[abbrev]; !ok {
		m.order = append(m.order, abbrev)
	}
	m.names[abbrev] = name
}

// Lookup returns the display name for an abbreviation, or the abbreviation
// itself if no override is known.
func (m *NameMap) Lookup(abbrev string) string {
	if m == nil || m.names == nil {
		return abbrev
	}
	if name, ok := m.names[abbrev]; ok {
		return name
	}
	return abbrev
}

// Abbrevs returns the known abbreviations in insertion order.
func (m *NameMap) Abbrevs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Load reads a two-column mapping file (Abk;Name) written by Save.
func Load(path string, delimiter rune) (*NameMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mapping %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read mapping %s: file is empty", path)
		}
		return nil, fmt.Errorf("read mapping %s: %w", path, err)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != abbrevColumn || strings.TrimSpace(header[1]) != nameColumn {
		return nil, fmt.Errorf("read mapping %s: expected %s%c%s header, got %q",
			path, abbrevColumn, delimiter, nameColumn, strings.Join(header, string(delimiter)))
	}

	m := &NameMap{names: make(map[string]string)}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read mapping %s: %w", path, err)
		}
		if len(rec) < 2 {
			continue
		}
		abbrev := strings.TrimSpace(rec[0])
		if abbrev == "" {
			continue
		}
		m.Override(abbrev, strings.TrimSpace(rec[1]))
	}
	return m, nil
}

// Save persists the mapping as a two-column delimited file. An existing file
// is never overwritten: Save returns ErrMappingExists and leaves the file
// untouched.
func (m *NameMap) Save(path string, delimiter rune) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrMappingExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat mapping %s: %w", path, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delimiter
	if err := w.Write([]string{abbrevColumn, nameColumn}); err != nil {
		return fmt.Errorf("write mapping header: %w", err)
	}
	for _, abbrev := range m.order {
		if err := w.Write([]string{abbrev, m.names[abbrev]}); err != nil {
			return fmt.Errorf("write mapping row %s: %w", abbrev, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush mapping: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("save mapping %s: %w", path, err)
	}
	return nil
}
