package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrEmpty = errors.New("sheet has no header row")

// Table is a decoded sheet: a header and the data rows under it.
type Table struct {
	Header []string
	Rows   []Row
	cols   map[string]int
}

// Row is one data line; Line is its 1-based position in the file.
type Row struct {
	Line   int
	Values []string
}

// Read decodes r, sniffs the delimiter and loads the first non-blank line as
// the header. Blank lines are skipped.
func Read(r io.Reader) (*Table, error) {
	ur, err := utf8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(ur)

	head, _ := br.Peek(sniffSize)

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(string(head))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	t := &Table{cols: make(map[string]int)}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if blank(record) {
			continue
		}

		if t.Header == nil {
			t.setHeader(record)
			continue
		}

		line, _ := reader.FieldPos(0)
		t.Rows = append(t.Rows, Row{Line: line, Values: record})
	}

	if t.Header == nil {
		return nil, ErrEmpty
	}

	return t, nil
}

func (t *Table) setHeader(record []string) {
	t.Header = make([]string, len(record))

	for i, name := range record {
		t.Header[i] = strings.TrimSpace(name)

		key := normalize(name)
		if _, dup := t.cols[key]; !dup {
			t.cols[key] = i
		}
	}
}

// Index returns the position of the first header matching any alias.
func (t *Table) Index(aliases ...string) (int, bool) {
	for _, a := range aliases {
		if i, ok := t.cols[normalize(a)]; ok {
			return i, true
		}
	}

	return -1, false
}

// Value returns the trimmed cell at col, empty when the row is short.
func (r Row) Value(col int) string {
	if col < 0 || col >= len(r.Values) {
		return ""
	}

	return strings.TrimSpace(r.Values[col])
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

// sniffDelimiter picks the separator that appears most often on the first
// line, preferring ';' which is what pt-BR spreadsheets emit.
func sniffDelimiter(sample string) rune {
	line, _, _ := strings.Cut(sample, "\n")

	best, bestCount := ';', strings.Count(line, ";")

	for _, d := range []rune{',', '\t'} {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}

	return best
}

// normalize folds a header to lower case ASCII without accents or
// surrounding punctuation, so "Descrição" matches "descricao".
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	out = strings.ToLower(strings.TrimSpace(out))

	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '-' || r == '.':
			return '_'
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			return r
		}

		return -1
	}, out)
}
