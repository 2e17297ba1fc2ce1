// Package katvectors parses the "key = hex" Known-Answer-Test vector
// files ML-KEM implementations are checked against (spec.md §6's KAT
// file format; test tooling outside the core components). The format itself is
// grounded on the reference implementation's KAT fixtures
// (_examples/original_source/tests/test_ml_kem_kat.cpp and
// test_ml_kem_512_encaps_acvp_kat.cpp): one "name = value" pair per
// line, records separated by a blank line.
package katvectors

import (
	"bufio"
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Record is one parsed test vector: an ordered set of field names to
// their decoded byte values, in the order they appeared in the file.
type Record struct {
	order  []string
	fields map[string][]byte
}

// Field returns the decoded bytes for name, or nil if the record has no
// such field.
func (r *Record) Field(name string) []byte {
	return r.fields[name]
}

// Names returns the field names in the order they appeared in the file.
func (r *Record) Names() []string {
	return r.order
}

// Parse reads "name = hex" lines from r, grouping consecutive non-blank
// lines into records and returning one Record per group. A malformed
// line (missing "=" or invalid hex) aborts parsing with a wrapped error
// naming the offending line number.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	cur := Record{fields: map[string][]byte{}}
	lineNo := 0

	flush := func() {
		if len(cur.order) > 0 {
			records = append(records, cur)
			cur = Record{fields: map[string][]byte{}}
		}
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}

		name, value, ok := splitField(line)
		if !ok {
			return nil, errors.Errorf("katvectors: line %d: expected \"name = hex\", got %q", lineNo, line)
		}

		decoded, err := hex.DecodeString(value)
		if err != nil {
			return nil, errors.Wrapf(err, "katvectors: line %d: field %q", lineNo, name)
		}

		if _, exists := cur.fields[name]; !exists {
			cur.order = append(cur.order, name)
		}
		cur.fields[name] = decoded
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "katvectors: reading vectors")
	}
	flush()

	return records, nil
}

// splitField splits a "name = value" line on the first "=", trimming
// surrounding whitespace from both halves.
func splitField(line string) (name, value string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	if name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}
