package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vijay-prabhu/portalfit/internal/columns"
)

// ErrParse is returned when the input cannot be decoded as delimited rows
// with a header. No partial record set is produced.
var ErrParse = errors.New("input is not a readable CSV with a header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV tokenizes r into a trimmed header and one Row per record. Short
// rows are tolerated and blank records are skipped. Heights such as 6'7"
// leave bare quotes inside unquoted fields, so quoting is parsed lazily.
func ReadCSV(r io.Reader) ([]string, []columns.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if !utf8.Valid(data) {
		return nil, nil, fmt.Errorf("%w: invalid UTF-8", ErrParse)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: missing header row", ErrParse)
	}

	headers := make([]string, len(records[0]))
	named := 0
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
		if headers[i] != "" {
			named++
		}
	}
	if named == 0 {
		return nil, nil, fmt.Errorf("%w: header row has no column names", ErrParse)
	}

	rows := make([]columns.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		row := make(columns.Row, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			if _, dup := row[h]; dup {
				continue
			}
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
