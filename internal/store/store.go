package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMalformedRecord reports a line whose fields could not be parsed into the
// record's typed fields (e.g. a non-numeric quantity). Lines with fewer fields
// than the record's arity are not malformed; they are skipped on load.
var ErrMalformedRecord = errors.New("malformed record")

// errSkipRecord tells Load to drop the row instead of failing the whole load.
var errSkipRecord = errors.New("skip record")

// recordStore persists a slice of records as one comma-separated line per
// record. Fields are never quoted or escaped, so field values must not
// contain commas or newlines.
type recordStore[T any] struct {
	path   string
	arity  int
	parse  func(fields []string) (T, error)
	format func(rec T) []string
}

// Load reads every record from the backing file. A missing file is an empty
// collection, not an error. Lines with fewer than arity fields are skipped.
func (s *recordStore[T]) Load() ([]T, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	records := []T{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < s.arity {
			continue
		}
		rec, err := s.parse(fields)
		if err != nil {
			if errors.Is(err, errSkipRecord) {
				continue
			}
			return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	return records, nil
}

// Save rewrites the backing file with the full record sequence.
func (s *recordStore[T]) Save(records []T) error {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(strings.Join(s.format(rec), ","))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Append adds a single record to the end of the backing file without
// reading or rewriting the existing lines.
func (s *recordStore[T]) Append(rec T) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(s.format(rec), ",") + "\n"); err != nil {
		return fmt.Errorf("failed to append to %s: %w", s.path, err)
	}
	return nil
}

// Path returns the location of the backing file.
func (s *recordStore[T]) Path() string {
	return s.path
}
