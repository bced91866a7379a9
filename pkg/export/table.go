// Package export renders report results into downloadable documents. Every renderer consumes the
// same normalized Table so the formats never disagree on rows, headings or values.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/noah-isme/boarding-admin-api/internal/models"
)

// EmptyNotice is shown by document renderers when a report has no rows.
const EmptyNotice = "No data available for this report."

// Table is a report flattened to an ordered sequence of records.
type Table struct {
	Records []models.Record
}

// Normalize turns a report result into a record sequence: a single summary becomes a one
// element sequence, tabular rows are kept as they are and nil rows become an empty sequence.
func Normalize(result models.ReportResult) Table {
	if result.Summary != nil {
		return Table{Records: []models.Record{result.Summary}}
	}
	if result.Rows == nil {
		return Table{Records: []models.Record{}}
	}
	return Table{Records: result.Rows}
}

// Empty reports whether the table has no records.
func (t Table) Empty() bool {
	return len(t.Records) == 0
}

// Keys returns the field keys of the first record.
func (t Table) Keys() []string {
	if t.Empty() {
		return nil
	}
	fields := t.Records[0].Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

// Headings returns the human readable column headings.
func (t Table) Headings() []string {
	keys := t.Keys()
	headings := make([]string, len(keys))
	for i, key := range keys {
		headings[i] = Heading(key)
	}
	return headings
}

// Cells returns every record's values rendered for display, positionally aligned with Headings.
func (t Table) Cells() [][]string {
	cells := make([][]string, len(t.Records))
	for i, record := range t.Records {
		fields := record.Fields()
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = DisplayValue(f.Value)
		}
		cells[i] = row
	}
	return cells
}

// Heading converts a field key into a sentence-case heading. Both snake_case and camelCase keys
// are split into words: "total_given" becomes "Total given", "studentId" becomes "Student id".
func Heading(key string) string {
	words := splitWords(key)
	if len(words) == 0 {
		return ""
	}
	lower := cases.Lower(language.English)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	words[0] = cases.Title(language.English).String(words[0])
	return strings.Join(words, " ")
}

func splitWords(key string) []string {
	var (
		words   []string
		current []rune
		prev    rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	for _, r := range key {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
		prev = r
	}
	flush()
	return words
}

// DisplayValue renders a field value as text. Numbers keep their natural form, dates become
// YYYY-MM-DD and nil becomes the empty string.
func DisplayValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Document is a normalized table plus the banner printed above it.
type Document struct {
	Title    string
	Subtitle string
	Caption  string
	Table    Table
}

// Blank reports whether printed layouts should show EmptyNotice instead of a table: either the
// table has no records or its only record is a summary of a window without activity. Data
// formats still carry the zero-valued summary.
func (d Document) Blank() bool {
	if d.Table.Empty() {
		return true
	}
	if len(d.Table.Records) != 1 {
		return false
	}
	q, ok := d.Table.Records[0].(models.Quiet)
	return ok && q.Quiet()
}

// NewDocument builds the printable document of a report. Caption is an optional institution name.
func NewDocument(result models.ReportResult, caption string) Document {
	return Document{
		Title:    result.Kind.Heading(),
		Subtitle: fmt.Sprintf("Month: %d | Year: %d", result.Period.Month, result.Period.Year),
		Caption:  caption,
		Table:    Normalize(result),
	}
}
