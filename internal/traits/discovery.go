package traits

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Discover derives the trait universe from the headers of the given breed
// files: the set-union of all column identifiers in left-to-right, first-seen
// order, minus the non-trait identifier columns. Only the first line of each
// file is read. Trait columns differ by breed, so a single file's header
// would silently drop traits unique to the other breeds.
func Discover(paths []string, delimiter rune, nonTrait []string) ([]string, error) {
	skip := make(map[string]struct{}, len(nonTrait))
	for _, c := range nonTrait {
		skip[c] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, path := range paths {
		header, err := readHeader(path, delimiter)
		if err != nil {
			return nil, err
		}
		for _, col := range header {
			if _, ok := skip[col]; ok {
				continue
			}
			if _, ok := seen[col]; ok {
				continue
			}
			seen[col] = struct{}{}
			out = append(out, col)
		}
	}
	return out, nil
}

// readHeader reads and splits the first line of a delimited file.
func readHeader(path string, delimiter rune) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rec, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header of %s: file is empty", path)
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	header := make([]string, 0, len(rec))
	for _, h := range rec {
		if h = strings.TrimSpace(h); h != "" {
			header = append(header, h)
		}
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("read header of %s: header line is empty", path)
	}
	return header, nil
}
